package binary

import (
	"encoding/binary"

	"github.com/wasmkit/wasmkit/wasm"
	"github.com/wasmkit/wasmkit/wasm/leb128"
)

// EncodeModule encodes the module in canonical form: minimal LEB128 and
// sections in ascending ID order, except that event comes between memory and
// global, and data count between element and code.
// Decoding the result yields an equal module, and for a module decoded from
// canonical input the original bytes.
func EncodeModule(m *wasm.Module) []byte {
	buf := append([]byte(nil), Magic...)
	buf = append(buf, Version...)

	if len(m.TypeSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.TypeSection)))
		for i := range m.TypeSection {
			contents = append(contents, encodeFunctionType(&m.TypeSection[i])...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDType, contents)...)
	}
	if len(m.ImportSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.ImportSection)))
		for i := range m.ImportSection {
			contents = append(contents, encodeImport(&m.ImportSection[i])...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDImport, contents)...)
	}
	if len(m.FunctionSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.FunctionSection)))
		for _, f := range m.FunctionSection {
			contents = append(contents, leb128.EncodeUint32(f.TypeIndex)...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDFunction, contents)...)
	}
	if len(m.TableSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.TableSection)))
		for i := range m.TableSection {
			t := &m.TableSection[i]
			contents = append(contents, t.Type)
			contents = append(contents, encodeLimits(&t.Limits)...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDTable, contents)...)
	}
	if len(m.MemorySection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.MemorySection)))
		for i := range m.MemorySection {
			contents = append(contents, encodeLimits(&m.MemorySection[i].Limits)...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDMemory, contents)...)
	}
	if len(m.EventSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.EventSection)))
		for i := range m.EventSection {
			e := &m.EventSection[i]
			contents = append(contents, e.Attribute)
			contents = append(contents, leb128.EncodeUint32(e.TypeIndex)...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDEvent, contents)...)
	}
	if len(m.GlobalSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.GlobalSection)))
		for i := range m.GlobalSection {
			g := &m.GlobalSection[i]
			contents = append(contents, encodeGlobalType(&g.Type)...)
			contents = append(contents, encodeConstantExpression(&g.Init)...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDGlobal, contents)...)
	}
	if len(m.ExportSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.ExportSection)))
		for i := range m.ExportSection {
			e := &m.ExportSection[i]
			contents = append(contents, encodeName(e.Name)...)
			contents = append(contents, e.Type)
			contents = append(contents, leb128.EncodeUint32(e.Index)...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDExport, contents)...)
	}
	if m.StartSection != nil {
		buf = append(buf, encodeSection(wasm.SectionIDStart, leb128.EncodeUint32(m.StartSection.FuncIndex))...)
	}
	if len(m.ElementSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.ElementSection)))
		for i := range m.ElementSection {
			contents = append(contents, encodeElementSegment(&m.ElementSection[i])...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDElement, contents)...)
	}
	if m.DataCountSection != nil {
		buf = append(buf, encodeSection(wasm.SectionIDDataCount, leb128.EncodeUint32(m.DataCountSection.Count))...)
	}
	if len(m.CodeSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.CodeSection)))
		for i := range m.CodeSection {
			contents = append(contents, encodeCode(&m.CodeSection[i])...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDCode, contents)...)
	}
	if len(m.DataSection) > 0 {
		contents := leb128.EncodeUint32(uint32(len(m.DataSection)))
		for i := range m.DataSection {
			contents = append(contents, encodeDataSegment(&m.DataSection[i])...)
		}
		buf = append(buf, encodeSection(wasm.SectionIDData, contents)...)
	}
	if m.NameSection != nil {
		contents := encodeName("name")
		contents = append(contents, encodeNameSectionData(m.NameSection)...)
		buf = append(buf, encodeSection(wasm.SectionIDCustom, contents)...)
	}
	for i := range m.CustomSections {
		c := &m.CustomSections[i]
		contents := encodeName(c.Name)
		contents = append(contents, c.Data...)
		buf = append(buf, encodeSection(wasm.SectionIDCustom, contents)...)
	}
	return buf
}

// encodeSection prepends the section ID and body size.
func encodeSection(id wasm.SectionID, contents []byte) []byte {
	ret := append([]byte{id}, leb128.EncodeUint32(uint32(len(contents)))...)
	return append(ret, contents...)
}

func encodeName(name string) []byte {
	ret := leb128.EncodeUint32(uint32(len(name)))
	return append(ret, name...)
}

func encodeValTypes(ts []wasm.ValueType) []byte {
	ret := leb128.EncodeUint32(uint32(len(ts)))
	return append(ret, ts...)
}

func encodeFunctionType(t *wasm.FunctionType) []byte {
	ret := append([]byte{0x60}, encodeValTypes(t.Params)...)
	return append(ret, encodeValTypes(t.Results)...)
}

func encodeLimits(l *wasm.Limits) []byte {
	var flags byte
	if l.Max != nil {
		flags |= limitsFlagHasMax
	}
	if l.Shared {
		flags |= limitsFlagShared
	}
	ret := append([]byte{flags}, leb128.EncodeUint32(l.Min)...)
	if l.Max != nil {
		ret = append(ret, leb128.EncodeUint32(*l.Max)...)
	}
	return ret
}

func encodeGlobalType(t *wasm.GlobalType) []byte {
	mut := byte(0)
	if t.Mutable {
		mut = 1
	}
	return []byte{t.ValType, mut}
}

func encodeImport(i *wasm.Import) []byte {
	ret := append(encodeName(i.Module), encodeName(i.Name)...)
	ret = append(ret, i.Type)
	switch i.Type {
	case wasm.ExternTypeFunc:
		ret = append(ret, leb128.EncodeUint32(i.DescFunc)...)
	case wasm.ExternTypeTable:
		ret = append(ret, i.DescTable.Type)
		ret = append(ret, encodeLimits(&i.DescTable.Limits)...)
	case wasm.ExternTypeMemory:
		ret = append(ret, encodeLimits(&i.DescMem.Limits)...)
	case wasm.ExternTypeGlobal:
		ret = append(ret, encodeGlobalType(&i.DescGlobal)...)
	case wasm.ExternTypeEvent:
		ret = append(ret, i.DescEvent.Attribute)
		ret = append(ret, leb128.EncodeUint32(i.DescEvent.TypeIndex)...)
	}
	return ret
}

func encodeConstantExpression(e *wasm.ConstantExpression) []byte {
	ret := EncodeInstruction(&e.Instr)
	return append(ret, byte(wasm.OpcodeEnd))
}

func encodeElementSegment(e *wasm.ElementSegment) []byte {
	// Reconstruct the lowest flag value expressing the segment.
	var flags uint32
	switch e.Mode {
	case wasm.ElementModePassive:
		flags = elemFlagPassiveOrDeclarative
	case wasm.ElementModeDeclarative:
		flags = elemFlagPassiveOrDeclarative | elemFlagExplicitIndex
	default:
		if e.TableIndex != 0 {
			flags = elemFlagExplicitIndex
		}
	}
	useExprs := e.Exprs != nil
	if useExprs {
		flags |= elemFlagExpressions
	}

	ret := leb128.EncodeUint32(flags)
	if e.Mode == wasm.ElementModeActive {
		if flags&elemFlagExplicitIndex != 0 {
			ret = append(ret, leb128.EncodeUint32(e.TableIndex)...)
		}
		ret = append(ret, encodeConstantExpression(&e.Offset)...)
	}
	if flags&(elemFlagPassiveOrDeclarative|elemFlagExplicitIndex) != 0 {
		if useExprs {
			ret = append(ret, e.Type)
		} else {
			ret = append(ret, 0) // element kind: funcref
		}
	}
	if useExprs {
		ret = append(ret, leb128.EncodeUint32(uint32(len(e.Exprs)))...)
		for i := range e.Exprs {
			ret = append(ret, encodeConstantExpression(&e.Exprs[i])...)
		}
	} else {
		ret = append(ret, leb128.EncodeUint32(uint32(len(e.Indexes)))...)
		for _, idx := range e.Indexes {
			ret = append(ret, leb128.EncodeUint32(idx)...)
		}
	}
	return ret
}

func encodeDataSegment(d *wasm.DataSegment) []byte {
	var ret []byte
	if d.Mode == wasm.DataModePassive {
		ret = leb128.EncodeUint32(dataFlagPassive)
	} else {
		ret = leb128.EncodeUint32(dataFlagActive)
		ret = append(ret, encodeConstantExpression(&d.Offset)...)
	}
	ret = append(ret, leb128.EncodeUint32(uint32(len(d.Init)))...)
	return append(ret, d.Init...)
}

func encodeCode(c *wasm.Code) []byte {
	// Run-length encode the locals.
	var locals []byte
	var runs uint32
	for i := 0; i < len(c.LocalTypes); {
		j := i
		for j < len(c.LocalTypes) && c.LocalTypes[j] == c.LocalTypes[i] {
			j++
		}
		locals = append(locals, leb128.EncodeUint32(uint32(j-i))...)
		locals = append(locals, c.LocalTypes[i])
		runs++
		i = j
	}

	body := leb128.EncodeUint32(runs)
	body = append(body, locals...)
	for i := range c.Body {
		body = append(body, EncodeInstruction(&c.Body[i])...)
	}

	ret := leb128.EncodeUint32(uint32(len(body)))
	return append(ret, body...)
}

// EncodeInstruction encodes one instruction: opcode, subopcode when prefixed,
// then the immediate.
func EncodeInstruction(i *wasm.Instruction) []byte {
	var ret []byte
	if p := i.Opcode.Prefix(); p != 0 {
		ret = append(ret, p)
		ret = append(ret, leb128.EncodeUint32(i.Opcode.Sub())...)
	} else {
		ret = append(ret, byte(i.Opcode))
	}

	switch imm := i.Imm.(type) {
	case wasm.NoImm:
	case wasm.BlockTypeImm:
		switch imm.Kind {
		case wasm.BlockTypeEmpty:
			ret = append(ret, 0x40)
		case wasm.BlockTypeValue:
			ret = append(ret, imm.ValueType)
		case wasm.BlockTypeFunc:
			ret = append(ret, leb128.EncodeInt64(int64(imm.TypeIndex))...)
		}
	case wasm.IndexImm:
		ret = append(ret, leb128.EncodeUint32(imm.Index)...)
	case wasm.CallIndirectImm:
		ret = append(ret, leb128.EncodeUint32(imm.TypeIndex)...)
		ret = append(ret, leb128.EncodeUint32(imm.TableIndex)...)
	case wasm.BrTableImm:
		ret = append(ret, leb128.EncodeUint32(uint32(len(imm.Targets)))...)
		for _, t := range imm.Targets {
			ret = append(ret, leb128.EncodeUint32(t)...)
		}
		ret = append(ret, leb128.EncodeUint32(imm.Default)...)
	case wasm.BrOnExnImm:
		ret = append(ret, leb128.EncodeUint32(imm.Label)...)
		ret = append(ret, leb128.EncodeUint32(imm.Event)...)
	case wasm.U8Imm:
		ret = append(ret, imm.Value)
	case wasm.MemArg:
		ret = append(ret, leb128.EncodeUint32(imm.AlignLog2)...)
		ret = append(ret, leb128.EncodeUint32(imm.Offset)...)
	case wasm.MemArgLaneImm:
		ret = append(ret, leb128.EncodeUint32(imm.MemArg.AlignLog2)...)
		ret = append(ret, leb128.EncodeUint32(imm.MemArg.Offset)...)
		ret = append(ret, imm.Lane)
	case wasm.LaneImm:
		ret = append(ret, imm.Lane)
	case wasm.ShuffleImm:
		ret = append(ret, imm.Lanes[:]...)
	case wasm.I32Imm:
		ret = append(ret, leb128.EncodeInt32(imm.Value)...)
	case wasm.I64Imm:
		ret = append(ret, leb128.EncodeInt64(imm.Value)...)
	case wasm.F32Imm:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], imm.Bits)
		ret = append(ret, b[:]...)
	case wasm.F64Imm:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], imm.Bits)
		ret = append(ret, b[:]...)
	case wasm.V128Imm:
		ret = append(ret, imm.Bytes[:]...)
	case wasm.SegmentImm:
		ret = append(ret, leb128.EncodeUint32(imm.Segment)...)
		ret = append(ret, leb128.EncodeUint32(imm.Dst)...)
	case wasm.CopyImm:
		ret = append(ret, leb128.EncodeUint32(imm.Dst)...)
		ret = append(ret, leb128.EncodeUint32(imm.Src)...)
	case wasm.ValueTypesImm:
		ret = append(ret, encodeValTypes(imm.Types)...)
	case wasm.RefTypeImm:
		ret = append(ret, imm.Type)
	}
	return ret
}
