//go:build avogen

// Command gen generates avx512_amd64.s from this avo description. Run with:
//
//	go run -tags avogen . -out ../avx512_amd64.s
//
// See internal/asm/avx2/gen/main.go for the AVX2 counterpart; this mirrors
// its structure at 64-byte/ZMM width and uses AVX-512BW mask-register
// compares instead of the simulated PMOVMSKB trick.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

func main() {
	genStoreNT()
	genVerify()
	genBroadcastByte()
	genBroadcastWord()
	genBroadcastDWord()
	genBroadcastQWord()
	genXor()
	genShifts()
	Generate()
}

func genStoreNT() {
	TEXT("storeNT", NOSPLIT, "func(dst *byte, v *byte)")
	dst := Load(Param("dst"), GP64())
	v := Load(Param("v"), GP64())
	z0 := ZMM()
	VMOVDQA64(Mem{Base: v}, z0)
	VMOVNTDQ(z0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genVerify() {
	TEXT("verify", NOSPLIT, "func(actual *byte, expected *byte) (mismatched uint64, mask uint64)")
	Doc("verify compares the 64 bytes at actual against expected using a genuine AVX-512BW mask register and pops it directly.")
	actual := Load(Param("actual"), GP64())
	expected := Load(Param("expected"), GP64())
	z0, z1 := ZMM(), ZMM()
	VMOVDQA64(Mem{Base: actual}, z0)
	VMOVDQA64(Mem{Base: expected}, z1)
	k1 := K()
	VPCMPEQB(z0, z1, k1)
	k2 := K()
	KNOTQ(k1, k2)
	raw := GP64()
	KMOVQ(k2, raw)
	popcnt := GP64()
	POPCNTQ(raw, popcnt)
	Store(popcnt, ReturnIndex(0))
	Store(raw, ReturnIndex(1))
	VZEROUPPER()
	RET()
}

func genBroadcastByte() {
	TEXT("broadcastByte", NOSPLIT, "func(b byte, dst *byte)")
	b := Load(Param("b"), GP32())
	dst := Load(Param("dst"), GP64())
	x0, z0 := XMM(), ZMM()
	MOVL(b, x0.As32())
	VPBROADCASTB(x0, z0)
	VMOVDQU64(z0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genBroadcastWord() {
	TEXT("broadcastWord", NOSPLIT, "func(w uint16, dst *byte)")
	w := Load(Param("w"), GP32())
	dst := Load(Param("dst"), GP64())
	x0, z0 := XMM(), ZMM()
	MOVL(w, x0.As32())
	VPBROADCASTW(x0, z0)
	VMOVDQU64(z0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genBroadcastDWord() {
	TEXT("broadcastDWord", NOSPLIT, "func(d uint32, dst *byte)")
	d := Load(Param("d"), GP32())
	dst := Load(Param("dst"), GP64())
	x0, z0 := XMM(), ZMM()
	MOVL(d, x0.As32())
	VPBROADCASTD(x0, z0)
	VMOVDQU64(z0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genBroadcastQWord() {
	TEXT("broadcastQWord", NOSPLIT, "func(q uint64, dst *byte)")
	q := Load(Param("q"), GP64())
	dst := Load(Param("dst"), GP64())
	x0, z0 := XMM(), ZMM()
	MOVQ(q, x0.As64())
	VPBROADCASTQ(x0, z0)
	VMOVDQU64(z0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genXor() {
	TEXT("xorVec", NOSPLIT, "func(a, b, dst *byte)")
	a := Load(Param("a"), GP64())
	b := Load(Param("b"), GP64())
	dst := Load(Param("dst"), GP64())
	z0, z1, z2 := ZMM(), ZMM(), ZMM()
	VMOVDQU64(Mem{Base: a}, z0)
	VMOVDQU64(Mem{Base: b}, z1)
	VPXORQ(z1, z0, z2)
	VMOVDQU64(z2, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genShifts() {
	shift := func(name string, instr func(operand.Op, reg.VecVirtual, reg.VecVirtual)) {
		TEXT(name, NOSPLIT, "func(src *byte, count uint64, dst *byte)")
		src := Load(Param("src"), GP64())
		count := Load(Param("count"), GP64())
		dst := Load(Param("dst"), GP64())
		z0, z2 := ZMM(), ZMM()
		x1 := XMM()
		VMOVDQU64(Mem{Base: src}, z0)
		MOVQ(count, x1.As64())
		instr(x1, z0, z2)
		VMOVDQU64(z2, Mem{Base: dst})
		VZEROUPPER()
		RET()
	}
	shift("shiftLeftQWord", VPSLLQ)
	shift("shiftRightQWord", VPSRLQ)
	shift("shiftLeftDWord", VPSLLD)
	shift("shiftRightDWord", VPSRLD)
	shift("shiftLeftWord", VPSLLW)
	shift("shiftRightWord", VPSRLW)
}
