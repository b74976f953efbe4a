package validate

import (
	"bytes"

	"github.com/wasmkit/wasmkit/wasm"
)

// funcValidator checks one function body against the module context.
type funcValidator struct {
	*context
	sts  *stacks
	code *wasm.Code
	typ  *wasm.FunctionType

	closed bool
}

func (v *funcValidator) validate() {
	s := v.sts
	s.reset()
	s.ctrl = append(s.ctrl, controlFrame{
		kind:     frameKindFunction,
		endTypes: v.typ.Results,
	})

	for i := range v.code.Body {
		instr := &v.code.Body[i]
		if v.closed {
			v.errf(instr.Loc, "instruction after the function's final end")
			return
		}
		v.instr(instr)
	}
	if !v.closed {
		loc := v.code.Loc
		if n := len(v.code.Body); n > 0 {
			loc = v.code.Body[n-1].Loc
		}
		v.errf(loc, "function body must end with a matching end")
	}
}

func (v *funcValidator) localType(idx wasm.Index) (wasm.ValueType, bool) {
	params := uint32(len(v.typ.Params))
	if idx < params {
		return v.typ.Params[idx], true
	}
	if n := idx - params; n < uint32(len(v.code.LocalTypes)) {
		return v.code.LocalTypes[n], true
	}
	return 0, false
}

// blockTypes resolves a block type immediate to its parameter and result
// types.
func (v *funcValidator) blockTypes(loc wasm.Location, imm wasm.BlockTypeImm) (start, end []wasm.ValueType) {
	switch imm.Kind {
	case wasm.BlockTypeEmpty:
		return nil, nil
	case wasm.BlockTypeValue:
		return nil, []wasm.ValueType{imm.ValueType}
	default:
		if !v.hasType(imm.TypeIndex) {
			v.errf(loc, "block type index %d out of range", imm.TypeIndex)
			return nil, nil
		}
		ft := v.funcType(imm.TypeIndex)
		return ft.Params, ft.Results
	}
}

// applySig pops the inputs and pushes the outputs. Mismatches are reported
// and the declared effect still applies, so downstream typing stays coherent.
func (v *funcValidator) applySig(instr *wasm.Instruction, s sig) {
	if err := v.sts.popAll(s.in); err != nil {
		v.errf(instr.Loc, "%s: %v", instr.Opcode, err)
	}
	v.sts.pushAll(s.out)
}

func (v *funcValidator) popExpect(instr *wasm.Instruction, t wasm.ValueType) {
	if _, err := v.sts.popExpect(t); err != nil {
		v.errf(instr.Loc, "%s: %v", instr.Opcode, err)
	}
}

// label resolves a branch target n frames below the top.
func (v *funcValidator) label(instr *wasm.Instruction, n wasm.Index) (*controlFrame, bool) {
	f, ok := v.sts.frame(int(n))
	if !ok {
		v.errf(instr.Loc, "%s: unknown label %d for %d open blocks", instr.Opcode, n, len(v.sts.ctrl))
	}
	return f, ok
}

func (v *funcValidator) requireMemory(instr *wasm.Instruction) bool {
	if len(v.memories) == 0 {
		v.errf(instr.Loc, "memory must exist for %s", instr.Opcode)
		return false
	}
	return true
}

func (v *funcValidator) requireDataCount(instr *wasm.Instruction) bool {
	if v.m.DataCountSection == nil {
		v.errf(instr.Loc, "%s requires a data count section", instr.Opcode)
		return false
	}
	return true
}

func (v *funcValidator) table(instr *wasm.Instruction, idx wasm.Index) (*wasm.Table, bool) {
	if int(idx) >= len(v.tables) {
		v.errf(instr.Loc, "%s: unknown table index %d", instr.Opcode, idx)
		return nil, false
	}
	return &v.tables[idx], true
}

func (v *funcValidator) instr(instr *wasm.Instruction) {
	s := v.sts
	op := instr.Opcode

	// Memory accesses, including atomics, are table-driven.
	if acc, ok := memAccesses[op]; ok {
		v.memAccess(instr, acc)
		return
	}

	switch op {
	case wasm.OpcodeUnreachable:
		s.markUnreachable()

	case wasm.OpcodeNop:

	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf, wasm.OpcodeTry:
		imm, _ := instr.Imm.(wasm.BlockTypeImm)
		start, end := v.blockTypes(instr.Loc, imm)
		if op == wasm.OpcodeIf {
			v.popExpect(instr, wasm.ValueTypeI32)
		}
		if err := s.popAll(start); err != nil {
			v.errf(instr.Loc, "%s: %v", op, err)
		}
		var kind frameKind
		switch op {
		case wasm.OpcodeBlock:
			kind = frameKindBlock
		case wasm.OpcodeLoop:
			kind = frameKindLoop
		case wasm.OpcodeIf:
			kind = frameKindIf
		default:
			kind = frameKindTry
		}
		s.pushFrame(kind, start, end)

	case wasm.OpcodeElse:
		f, err := s.popFrame()
		if err != nil {
			v.errf(instr.Loc, "%s: %v", op, err)
		}
		if f.kind != frameKindIf {
			v.errf(instr.Loc, "else must follow an if block, not %s", f.kind)
		}
		s.pushFrame(frameKindElse, f.startTypes, f.endTypes)

	case wasm.OpcodeCatch:
		f, err := s.popFrame()
		if err != nil {
			v.errf(instr.Loc, "%s: %v", op, err)
		}
		if f.kind != frameKindTry {
			v.errf(instr.Loc, "catch must follow a try block, not %s", f.kind)
		}
		s.pushFrame(frameKindCatch, []wasm.ValueType{wasm.ValueTypeExnref}, f.endTypes)

	case wasm.OpcodeThrow:
		imm, _ := instr.Imm.(wasm.IndexImm)
		if int(imm.Index) >= len(v.events) {
			v.errf(instr.Loc, "%s: unknown event index %d", op, imm.Index)
		} else {
			ft := v.funcType(v.events[imm.Index].TypeIndex)
			if err := s.popAll(ft.Params); err != nil {
				v.errf(instr.Loc, "%s: %v", op, err)
			}
		}
		s.markUnreachable()

	case wasm.OpcodeRethrow:
		v.popExpect(instr, wasm.ValueTypeExnref)
		s.markUnreachable()

	case wasm.OpcodeBrOnExn:
		imm, _ := instr.Imm.(wasm.BrOnExnImm)
		v.popExpect(instr, wasm.ValueTypeExnref)
		f, ok := v.label(instr, imm.Label)
		if ok && int(imm.Event) >= len(v.events) {
			v.errf(instr.Loc, "%s: unknown event index %d", op, imm.Event)
		} else if ok {
			ft := v.funcType(v.events[imm.Event].TypeIndex)
			if !typesEqual(f.labelTypes(), ft.Params) {
				v.errf(instr.Loc, "%s: label expects %s but event carries %s", op,
					wasm.ValueTypesName(f.labelTypes()), wasm.ValueTypesName(ft.Params))
			}
		}
		s.push(wasm.ValueTypeExnref)

	case wasm.OpcodeEnd:
		f, err := s.popFrame()
		if err != nil {
			v.errf(instr.Loc, "end: %v", err)
		}
		if f.kind == frameKindIf && !typesEqual(f.startTypes, f.endTypes) {
			v.errf(instr.Loc, "if without else requires block parameters %s to equal results %s",
				wasm.ValueTypesName(f.startTypes), wasm.ValueTypesName(f.endTypes))
		}
		if len(s.ctrl) == 0 {
			v.closed = true
			return
		}
		s.pushAll(f.endTypes)

	case wasm.OpcodeBr:
		imm, _ := instr.Imm.(wasm.IndexImm)
		if f, ok := v.label(instr, imm.Index); ok {
			if err := s.popAll(f.labelTypes()); err != nil {
				v.errf(instr.Loc, "%s: %v", op, err)
			}
		}
		s.markUnreachable()

	case wasm.OpcodeBrIf:
		imm, _ := instr.Imm.(wasm.IndexImm)
		v.popExpect(instr, wasm.ValueTypeI32)
		if f, ok := v.label(instr, imm.Index); ok {
			if err := s.peekAll(f.labelTypes()); err != nil {
				v.errf(instr.Loc, "%s: %v", op, err)
			}
		}

	case wasm.OpcodeBrTable:
		imm, _ := instr.Imm.(wasm.BrTableImm)
		v.popExpect(instr, wasm.ValueTypeI32)
		def, ok := v.label(instr, imm.Default)
		if ok {
			defTypes := def.labelTypes()
			for _, l := range imm.Targets {
				f, ok := v.label(instr, l)
				if !ok {
					continue
				}
				if !typesEqual(f.labelTypes(), defTypes) {
					v.errf(instr.Loc, "br_table label %d arity mismatch: %s != %s", l,
						wasm.ValueTypesName(f.labelTypes()), wasm.ValueTypesName(defTypes))
				}
			}
			if err := s.popAll(defTypes); err != nil {
				v.errf(instr.Loc, "%s: %v", op, err)
			}
		}
		s.markUnreachable()

	case wasm.OpcodeReturn:
		if err := s.popAll(v.typ.Results); err != nil {
			v.errf(instr.Loc, "%s: %v", op, err)
		}
		s.markUnreachable()

	case wasm.OpcodeCall, wasm.OpcodeReturnCall:
		imm, _ := instr.Imm.(wasm.IndexImm)
		if int(imm.Index) >= len(v.funcs) || !v.hasType(v.funcs[imm.Index]) {
			if int(imm.Index) >= len(v.funcs) {
				v.errf(instr.Loc, "%s: unknown function index %d", op, imm.Index)
			}
			if op == wasm.OpcodeReturnCall {
				s.markUnreachable()
			}
			return
		}
		ft := v.funcType(v.funcs[imm.Index])
		if err := s.popAll(ft.Params); err != nil {
			v.errf(instr.Loc, "%s: %v", op, err)
		}
		if op == wasm.OpcodeCall {
			s.pushAll(ft.Results)
		} else {
			if !typesEqual(ft.Results, v.typ.Results) {
				v.errf(instr.Loc, "%s results %s do not match caller results %s", op,
					wasm.ValueTypesName(ft.Results), wasm.ValueTypesName(v.typ.Results))
			}
			s.markUnreachable()
		}

	case wasm.OpcodeCallIndirect, wasm.OpcodeReturnCallIndirect:
		imm, _ := instr.Imm.(wasm.CallIndirectImm)
		if t, ok := v.table(instr, imm.TableIndex); ok && t.Type != wasm.ValueTypeFuncref {
			v.errf(instr.Loc, "%s: table %d is %s, not funcref", op, imm.TableIndex, wasm.ValueTypeName(t.Type))
		}
		if !v.hasType(imm.TypeIndex) {
			v.errf(instr.Loc, "%s: type index %d out of range", op, imm.TypeIndex)
			if op == wasm.OpcodeReturnCallIndirect {
				s.markUnreachable()
			}
			return
		}
		v.popExpect(instr, wasm.ValueTypeI32)
		ft := v.funcType(imm.TypeIndex)
		if err := s.popAll(ft.Params); err != nil {
			v.errf(instr.Loc, "%s: %v", op, err)
		}
		if op == wasm.OpcodeCallIndirect {
			s.pushAll(ft.Results)
		} else {
			if !typesEqual(ft.Results, v.typ.Results) {
				v.errf(instr.Loc, "%s results %s do not match caller results %s", op,
					wasm.ValueTypesName(ft.Results), wasm.ValueTypesName(v.typ.Results))
			}
			s.markUnreachable()
		}

	case wasm.OpcodeDrop:
		if _, err := s.pop(); err != nil {
			v.errf(instr.Loc, "%s: %v", op, err)
		}

	case wasm.OpcodeSelect:
		v.popExpect(instr, wasm.ValueTypeI32)
		t1, err1 := s.pop()
		t2, err2 := s.pop()
		if err1 != nil {
			v.errf(instr.Loc, "%s: %v", op, err1)
		} else if err2 != nil {
			v.errf(instr.Loc, "%s: %v", op, err2)
		}
		result := t1
		if t1 == valueTypeUnknown {
			result = t2
		}
		if t1 != valueTypeUnknown && t2 != valueTypeUnknown && t1 != t2 {
			v.errf(instr.Loc, "%s: mismatched operand types %s and %s", op,
				wasm.ValueTypeName(t1), wasm.ValueTypeName(t2))
		}
		// The legacy untyped form never applies to reference types; the
		// annotated form below exists for those.
		if result != valueTypeUnknown && !wasm.IsNumType(result) {
			v.errf(instr.Loc, "%s without a type annotation cannot select %s", op, wasm.ValueTypeName(result))
		}
		s.push(result)

	case wasm.OpcodeTypedSelect:
		imm, _ := instr.Imm.(wasm.ValueTypesImm)
		t := valueTypeUnknown
		if len(imm.Types) != 1 {
			v.errf(instr.Loc, "select annotation must carry exactly one type, has %d", len(imm.Types))
		} else {
			t = imm.Types[0]
		}
		v.popExpect(instr, wasm.ValueTypeI32)
		v.popExpect(instr, t)
		v.popExpect(instr, t)
		s.push(t)

	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee:
		imm, _ := instr.Imm.(wasm.IndexImm)
		t, ok := v.localType(imm.Index)
		if !ok {
			v.errf(instr.Loc, "%s: unknown local index %d (%d params, %d locals)",
				op, imm.Index, len(v.typ.Params), len(v.code.LocalTypes))
			t = valueTypeUnknown
		}
		switch op {
		case wasm.OpcodeLocalGet:
			s.push(t)
		case wasm.OpcodeLocalSet:
			v.popExpect(instr, t)
		default:
			v.popExpect(instr, t)
			s.push(t)
		}

	case wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet:
		imm, _ := instr.Imm.(wasm.IndexImm)
		if int(imm.Index) >= len(v.globals) {
			v.errf(instr.Loc, "%s: unknown global index %d", op, imm.Index)
			if op == wasm.OpcodeGlobalGet {
				s.push(valueTypeUnknown)
			} else {
				_, _ = s.pop()
			}
			return
		}
		g := v.globals[imm.Index]
		if op == wasm.OpcodeGlobalGet {
			s.push(g.typ.ValType)
		} else {
			if !g.typ.Mutable {
				v.errf(instr.Loc, "%s of immutable global %d", op, imm.Index)
			}
			v.popExpect(instr, g.typ.ValType)
		}

	case wasm.OpcodeTableGet, wasm.OpcodeTableSet:
		imm, _ := instr.Imm.(wasm.IndexImm)
		t, ok := v.table(instr, imm.Index)
		elem := valueTypeUnknown
		if ok {
			elem = t.Type
		}
		if op == wasm.OpcodeTableGet {
			v.popExpect(instr, wasm.ValueTypeI32)
			s.push(elem)
		} else {
			v.popExpect(instr, elem)
			v.popExpect(instr, wasm.ValueTypeI32)
		}

	case wasm.OpcodeMemorySize, wasm.OpcodeMemoryGrow:
		v.requireMemory(instr)
		if op == wasm.OpcodeMemoryGrow {
			v.popExpect(instr, wasm.ValueTypeI32)
		}
		s.push(wasm.ValueTypeI32)

	case wasm.OpcodeI32Const:
		s.push(wasm.ValueTypeI32)
	case wasm.OpcodeI64Const:
		s.push(wasm.ValueTypeI64)
	case wasm.OpcodeF32Const:
		s.push(wasm.ValueTypeF32)
	case wasm.OpcodeF64Const:
		s.push(wasm.ValueTypeF64)
	case wasm.OpcodeV128Const:
		s.push(wasm.ValueTypeV128)

	case wasm.OpcodeRefNull:
		imm, _ := instr.Imm.(wasm.RefTypeImm)
		s.push(imm.Type)

	case wasm.OpcodeRefIsNull:
		t, err := s.pop()
		if err != nil {
			v.errf(instr.Loc, "%s: %v", op, err)
		} else if t != valueTypeUnknown && !wasm.IsRefType(t) {
			v.errf(instr.Loc, "%s: expected a reference type but found %s", op, wasm.ValueTypeName(t))
		}
		s.push(wasm.ValueTypeI32)

	case wasm.OpcodeRefFunc:
		imm, _ := instr.Imm.(wasm.IndexImm)
		if int(imm.Index) >= len(v.funcs) {
			v.errf(instr.Loc, "%s: unknown function index %d", op, imm.Index)
		} else if _, ok := v.declaredFuncs[imm.Index]; !ok {
			v.errf(instr.Loc, "%s: undeclared function index %d", op, imm.Index)
		}
		s.push(wasm.ValueTypeFuncref)

	case wasm.OpcodeMemoryInit:
		imm, _ := instr.Imm.(wasm.SegmentImm)
		v.requireMemory(instr)
		if v.requireDataCount(instr) && imm.Segment >= v.m.DataCountSection.Count {
			v.errf(instr.Loc, "%s: data segment %d out of range of data count %d", op, imm.Segment, v.m.DataCountSection.Count)
		}
		v.applySig(instr, sig{in: []wasm.ValueType{i32, i32, i32}})

	case wasm.OpcodeDataDrop:
		imm, _ := instr.Imm.(wasm.IndexImm)
		if v.requireDataCount(instr) && imm.Index >= v.m.DataCountSection.Count {
			v.errf(instr.Loc, "%s: data segment %d out of range of data count %d", op, imm.Index, v.m.DataCountSection.Count)
		}

	case wasm.OpcodeMemoryCopy, wasm.OpcodeMemoryFill:
		v.requireMemory(instr)
		v.applySig(instr, sig{in: []wasm.ValueType{i32, i32, i32}})

	case wasm.OpcodeTableInit:
		imm, _ := instr.Imm.(wasm.SegmentImm)
		if int(imm.Segment) >= len(v.m.ElementSection) {
			v.errf(instr.Loc, "%s: element segment %d out of range", op, imm.Segment)
		} else if t, ok := v.table(instr, imm.Dst); ok {
			if seg := &v.m.ElementSection[imm.Segment]; seg.Type != t.Type {
				v.errf(instr.Loc, "%s: %s elements do not match %s table", op,
					wasm.ValueTypeName(seg.Type), wasm.ValueTypeName(t.Type))
			}
		}
		v.applySig(instr, sig{in: []wasm.ValueType{i32, i32, i32}})

	case wasm.OpcodeElemDrop:
		imm, _ := instr.Imm.(wasm.IndexImm)
		if int(imm.Index) >= len(v.m.ElementSection) {
			v.errf(instr.Loc, "%s: element segment %d out of range", op, imm.Index)
		}

	case wasm.OpcodeTableCopy:
		imm, _ := instr.Imm.(wasm.CopyImm)
		dst, okDst := v.table(instr, imm.Dst)
		src, okSrc := v.table(instr, imm.Src)
		if okDst && okSrc && dst.Type != src.Type {
			v.errf(instr.Loc, "%s: type mismatch: %s (src) != %s (dst)", op,
				wasm.ValueTypeName(src.Type), wasm.ValueTypeName(dst.Type))
		}
		v.applySig(instr, sig{in: []wasm.ValueType{i32, i32, i32}})

	case wasm.OpcodeTableGrow, wasm.OpcodeTableSize, wasm.OpcodeTableFill:
		imm, _ := instr.Imm.(wasm.IndexImm)
		t, ok := v.table(instr, imm.Index)
		elem := valueTypeUnknown
		if ok {
			elem = t.Type
		}
		switch op {
		case wasm.OpcodeTableGrow:
			v.popExpect(instr, wasm.ValueTypeI32)
			v.popExpect(instr, elem)
			s.push(wasm.ValueTypeI32)
		case wasm.OpcodeTableSize:
			s.push(wasm.ValueTypeI32)
		default: // table.fill
			v.popExpect(instr, wasm.ValueTypeI32)
			v.popExpect(instr, elem)
			v.popExpect(instr, wasm.ValueTypeI32)
		}

	case wasm.OpcodeAtomicFence:

	default:
		if sg, ok := opSigs[op]; ok {
			if n, lane := laneCounts[op], laneOf(instr); n != 0 && lane >= n {
				v.errf(instr.Loc, "%s: lane %d out of range (%d lanes)", op, lane, n)
			}
			v.applySig(instr, sg)
			return
		}
		v.errf(instr.Loc, "no typing rule for %s", op)
	}
}

// memAccess applies a load, store or atomic access: the memory must exist,
// the alignment hint is bounded by the natural size (equal, for atomics),
// and atomics additionally require the memory to be shared.
func (v *funcValidator) memAccess(instr *wasm.Instruction, acc memAccess) {
	atomic := instr.Opcode.Prefix() == wasm.AtomicPrefix
	if v.requireMemory(instr) && atomic && !v.memories[0].Limits.Shared {
		v.errf(instr.Loc, "%s requires a shared memory", instr.Opcode)
	}

	var arg wasm.MemArg
	var lane byte
	hasLane := false
	switch imm := instr.Imm.(type) {
	case wasm.MemArg:
		arg = imm
	case wasm.MemArgLaneImm:
		arg, lane, hasLane = imm.MemArg, imm.Lane, true
	}

	if arg.AlignLog2 > 31 || 1<<arg.AlignLog2 > acc.size {
		v.errf(instr.Loc, "%s: alignment 2^%d exceeds natural alignment %d", instr.Opcode, arg.AlignLog2, acc.size)
	} else if atomic && 1<<arg.AlignLog2 != acc.size {
		v.errf(instr.Loc, "%s: alignment 2^%d must equal natural alignment %d", instr.Opcode, arg.AlignLog2, acc.size)
	}
	if hasLane {
		if n := laneCounts[instr.Opcode]; lane >= n {
			v.errf(instr.Loc, "%s: lane %d out of range (%d lanes)", instr.Opcode, lane, n)
		}
	}

	v.applySig(instr, acc.sig)
}

func laneOf(instr *wasm.Instruction) byte {
	if imm, ok := instr.Imm.(wasm.LaneImm); ok {
		return imm.Lane
	}
	return 0
}

func typesEqual(a, b []wasm.ValueType) bool {
	return bytes.Equal(a, b)
}
