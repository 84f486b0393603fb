//go:build avogen

// Command gen generates avx2_amd64.s from this avo description. Run with:
//
//	go run -tags avogen . -out ../avx2_amd64.s
//
// The checked-in avx2_amd64.s is the committed output of this generator,
// the same generator+checked-in-assembly split fastpfor-go uses for its
// SSE2 delta kernels.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

func main() {
	genStoreNT()
	genVerify()
	genBroadcasts()
	genXor()
	genShifts()
	Generate()
}

func genStoreNT() {
	TEXT("storeNT", NOSPLIT, "func(dst *byte, v *byte)")
	Doc("storeNT issues a non-temporal, 32-byte-aligned store of the vector at v into dst.")
	dst := Load(Param("dst"), GP64())
	v := Load(Param("v"), GP64())
	y0 := YMM()
	VMOVDQA(Mem{Base: v}, y0)
	VMOVNTDQ(y0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genVerify() {
	TEXT("verify", NOSPLIT, "func(actual *byte, expected *byte) (mismatched uint64, mask uint64)")
	Doc("verify compares the 32 bytes at actual against expected and returns the exact mismatched-byte count and mask.")
	actual := Load(Param("actual"), GP64())
	expected := Load(Param("expected"), GP64())
	y0, y1, y2 := YMM(), YMM(), YMM()
	VMOVDQA(Mem{Base: actual}, y0)
	VMOVDQA(Mem{Base: expected}, y1)
	VPCMPEQB(y1, y0, y2)
	maskReg := GP32()
	VPMOVMSKB(y2, maskReg)
	NOTL(maskReg)
	wide := GP64()
	MOVL(maskReg, wide.As32())
	popcnt := GP64()
	POPCNTQ(wide, popcnt)
	Store(popcnt, ReturnIndex(0))
	Store(wide, ReturnIndex(1))
	VZEROUPPER()
	RET()
}

func genBroadcasts() {
	genBroadcastByte()
	genBroadcastWord()
	genBroadcastDWord()
	genBroadcastQWord()
}

func genBroadcastByte() {
	TEXT("broadcastByte", NOSPLIT, "func(b byte, dst *byte)")
	b := Load(Param("b"), GP32())
	dst := Load(Param("dst"), GP64())
	x0, y0 := XMM(), YMM()
	MOVL(b, x0.As32())
	VPBROADCASTB(x0, y0)
	VMOVDQU(y0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genBroadcastWord() {
	TEXT("broadcastWord", NOSPLIT, "func(w uint16, dst *byte)")
	w := Load(Param("w"), GP32())
	dst := Load(Param("dst"), GP64())
	x0, y0 := XMM(), YMM()
	MOVL(w, x0.As32())
	VPBROADCASTW(x0, y0)
	VMOVDQU(y0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genBroadcastDWord() {
	TEXT("broadcastDWord", NOSPLIT, "func(d uint32, dst *byte)")
	d := Load(Param("d"), GP32())
	dst := Load(Param("dst"), GP64())
	x0, y0 := XMM(), YMM()
	MOVL(d, x0.As32())
	VPBROADCASTD(x0, y0)
	VMOVDQU(y0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genBroadcastQWord() {
	TEXT("broadcastQWord", NOSPLIT, "func(q uint64, dst *byte)")
	q := Load(Param("q"), GP64())
	dst := Load(Param("dst"), GP64())
	x0, y0 := XMM(), YMM()
	MOVQ(q, x0.As64())
	VPBROADCASTQ(x0, y0)
	VMOVDQU(y0, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

func genXor() {
	TEXT("xorVec", NOSPLIT, "func(a, b, dst *byte)")
	a := Load(Param("a"), GP64())
	b := Load(Param("b"), GP64())
	dst := Load(Param("dst"), GP64())
	y0, y1, y2 := YMM(), YMM(), YMM()
	VMOVDQU(Mem{Base: a}, y0)
	VMOVDQU(Mem{Base: b}, y1)
	VPXOR(y1, y0, y2)
	VMOVDQU(y2, Mem{Base: dst})
	VZEROUPPER()
	RET()
}

// genShifts emits the six register-count shift primitives. Each takes the
// shift count as a runtime uint64 loaded into the low bits of an XMM
// register, applying the register-count form of the VPSLL/VPSRL family
// rather than requiring a compile-time immediate (§9 decision 3).
func genShifts() {
	shift := func(name string, instr func(operand.Op, reg.VecVirtual, reg.VecVirtual)) {
		TEXT(name, NOSPLIT, "func(src *byte, count uint64, dst *byte)")
		src := Load(Param("src"), GP64())
		count := Load(Param("count"), GP64())
		dst := Load(Param("dst"), GP64())
		y0, y2 := YMM(), YMM()
		x1 := XMM()
		VMOVDQU(Mem{Base: src}, y0)
		MOVQ(count, x1.As64())
		instr(x1, y0, y2)
		VMOVDQU(y2, Mem{Base: dst})
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
