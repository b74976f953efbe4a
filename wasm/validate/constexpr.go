package validate

import (
	"github.com/wasmkit/wasmkit/wasm"
)

// validateConstExpr checks that a constant expression's single producing
// instruction yields exactly the expected type and is one of the permitted
// producers: a numeric or vector constant, ref.null, ref.func of a declared
// function, or global.get of an imported immutable global.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#constant-expressions%E2%91%A0
func (c *context) validateConstExpr(e *wasm.ConstantExpression, expected wasm.ValueType, desc string) {
	var actual wasm.ValueType

	instr := &e.Instr
	switch instr.Opcode {
	case wasm.OpcodeI32Const:
		actual = wasm.ValueTypeI32
	case wasm.OpcodeI64Const:
		actual = wasm.ValueTypeI64
	case wasm.OpcodeF32Const:
		actual = wasm.ValueTypeF32
	case wasm.OpcodeF64Const:
		actual = wasm.ValueTypeF64
	case wasm.OpcodeV128Const:
		actual = wasm.ValueTypeV128

	case wasm.OpcodeRefNull:
		imm, ok := instr.Imm.(wasm.RefTypeImm)
		if !ok {
			c.errf(instr.Loc, "%s: malformed ref.null immediate", desc)
			return
		}
		actual = imm.Type

	case wasm.OpcodeRefFunc:
		imm, ok := instr.Imm.(wasm.IndexImm)
		if !ok {
			c.errf(instr.Loc, "%s: malformed ref.func immediate", desc)
			return
		}
		if int(imm.Index) >= len(c.funcs) {
			c.errf(instr.Loc, "%s: ref.func of unknown function %d", desc, imm.Index)
			return
		}
		if _, ok := c.declaredFuncs[imm.Index]; !ok {
			c.errf(instr.Loc, "%s: ref.func of undeclared function %d", desc, imm.Index)
			return
		}
		actual = wasm.ValueTypeFuncref

	case wasm.OpcodeGlobalGet:
		imm, ok := instr.Imm.(wasm.IndexImm)
		if !ok {
			c.errf(instr.Loc, "%s: malformed global.get immediate", desc)
			return
		}
		// Only imported globals are in scope: module-defined globals may not
		// be initialized yet when this expression evaluates.
		if imm.Index >= c.importedGlobals {
			c.errf(instr.Loc, "%s: global.get %d is not an imported global", desc, imm.Index)
			return
		}
		g := c.globals[imm.Index]
		if g.typ.Mutable {
			c.errf(instr.Loc, "%s: constant expression references mutable global %d", desc, imm.Index)
			return
		}
		actual = g.typ.ValType

	default:
		c.errf(instr.Loc, "%s: %s is not allowed in a constant expression", desc, instr.Opcode)
		return
	}

	if f := wasm.OpcodeFeature(instr.Opcode); f != 0 {
		if err := c.features.RequireEnabled(f); err != nil {
			c.errf(instr.Loc, "%s: %s invalid as %v", desc, instr.Opcode, err)
			return
		}
	}

	if actual != expected {
		c.errf(instr.Loc, "%s: expected %s but the expression produces %s",
			desc, wasm.ValueTypeName(expected), wasm.ValueTypeName(actual))
	}
}
