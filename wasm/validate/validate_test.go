package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/wasmkit/wasm"
)

// funcModule builds a module with one function of the given type and body.
func funcModule(params, results []wasm.ValueType, body ...wasm.Instruction) *wasm.Module {
	return &wasm.Module{
		TypeSection:     []wasm.FunctionType{{Params: params, Results: results}},
		FunctionSection: []wasm.Function{{TypeIndex: 0}},
		CodeSection:     []wasm.Code{{Body: body}},
	}
}

func instr(op wasm.Opcode, imm wasm.Immediate) wasm.Instruction {
	return wasm.Instruction{Opcode: op, Imm: imm}
}

func i32Const(v int32) wasm.Instruction {
	return instr(wasm.OpcodeI32Const, wasm.I32Imm{Value: v})
}

func end() wasm.Instruction {
	return instr(wasm.OpcodeEnd, wasm.NoImm{})
}

func TestModule_Empty(t *testing.T) {
	require.NoError(t, Module(&wasm.Module{}, Config{}))
}

func TestModule_TypeOnly(t *testing.T) {
	m := &wasm.Module{TypeSection: []wasm.FunctionType{{Results: []wasm.ValueType{wasm.ValueTypeI32}}}}
	require.NoError(t, Module(m, Config{}))
}

func TestModule_SimpleFunction(t *testing.T) {
	m := funcModule(nil, []wasm.ValueType{wasm.ValueTypeI32},
		i32Const(1),
		i32Const(2),
		instr(wasm.OpcodeI32Add, wasm.NoImm{}),
		end(),
	)
	require.NoError(t, Module(m, Config{}))
}

func TestModule_ResultTypeMismatch(t *testing.T) {
	m := funcModule(nil, []wasm.ValueType{wasm.ValueTypeI32},
		instr(wasm.OpcodeI64Const, wasm.I64Imm{Value: 0}),
		end(),
	)
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected i32 but found i64")
}

func TestModule_StackUnderflow(t *testing.T) {
	m := funcModule(nil, nil,
		instr(wasm.OpcodeI32Add, wasm.NoImm{}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "stack underflow")
}

func TestModule_UnreachableIsPolymorphic(t *testing.T) {
	m := funcModule(nil, []wasm.ValueType{wasm.ValueTypeI32},
		instr(wasm.OpcodeUnreachable, wasm.NoImm{}),
		instr(wasm.OpcodeI32Add, wasm.NoImm{}),
		end(),
	)
	require.NoError(t, Module(m, Config{}))
}

func TestModule_BrTableArityMismatch(t *testing.T) {
	m := funcModule(nil, nil,
		instr(wasm.OpcodeBlock, wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: wasm.ValueTypeI32}),
		i32Const(0),
		instr(wasm.OpcodeBrTable, wasm.BrTableImm{Targets: []wasm.Index{0}, Default: 1}),
		end(),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "br_table label 0 arity mismatch")
}

func TestModule_BrTableMatchingArities(t *testing.T) {
	m := funcModule(nil, nil,
		instr(wasm.OpcodeBlock, wasm.BlockTypeImm{Kind: wasm.BlockTypeEmpty}),
		i32Const(0),
		instr(wasm.OpcodeBrTable, wasm.BrTableImm{Targets: []wasm.Index{0}, Default: 1}),
		end(),
		end(),
	)
	require.NoError(t, Module(m, Config{}))
}

func TestModule_BlockAndBranch(t *testing.T) {
	m := funcModule(nil, []wasm.ValueType{wasm.ValueTypeI32},
		instr(wasm.OpcodeBlock, wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: wasm.ValueTypeI32}),
		i32Const(7),
		instr(wasm.OpcodeBr, wasm.IndexImm{Index: 0}),
		end(),
		end(),
	)
	require.NoError(t, Module(m, Config{}))
}

func TestModule_LoopLabelUsesStartTypes(t *testing.T) {
	// br 0 inside a loop targets the loop start, which takes no values even
	// though the loop produces one.
	m := funcModule(nil, []wasm.ValueType{wasm.ValueTypeI32},
		instr(wasm.OpcodeLoop, wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: wasm.ValueTypeI32}),
		instr(wasm.OpcodeBr, wasm.IndexImm{Index: 0}),
		end(),
		end(),
	)
	require.NoError(t, Module(m, Config{}))
}

func TestModule_IfWithoutElse(t *testing.T) {
	m := funcModule(nil, nil,
		i32Const(1),
		instr(wasm.OpcodeIf, wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: wasm.ValueTypeI32}),
		i32Const(2),
		end(),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "if without else")
}

func TestModule_IfElse(t *testing.T) {
	m := funcModule(nil, []wasm.ValueType{wasm.ValueTypeI32},
		i32Const(1),
		instr(wasm.OpcodeIf, wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: wasm.ValueTypeI32}),
		i32Const(2),
		instr(wasm.OpcodeElse, wasm.NoImm{}),
		i32Const(3),
		end(),
		end(),
	)
	require.NoError(t, Module(m, Config{}))
}

func TestModule_LocalAccess(t *testing.T) {
	m := funcModule([]wasm.ValueType{wasm.ValueTypeI64}, []wasm.ValueType{wasm.ValueTypeI64},
		instr(wasm.OpcodeLocalGet, wasm.IndexImm{Index: 0}),
		end(),
	)
	m.CodeSection[0].LocalTypes = []wasm.ValueType{wasm.ValueTypeF32}
	require.NoError(t, Module(m, Config{}))

	bad := funcModule(nil, nil,
		instr(wasm.OpcodeLocalGet, wasm.IndexImm{Index: 3}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	err := Module(bad, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown local index 3")
}

func TestModule_GlobalRules(t *testing.T) {
	mutable := wasm.GlobalType{ValType: wasm.ValueTypeI32, Mutable: true}
	m := &wasm.Module{
		ImportSection: []wasm.Import{{Module: "env", Name: "g", Type: wasm.ExternTypeGlobal, DescGlobal: mutable}},
		TypeSection:   []wasm.FunctionType{{}},
		FunctionSection: []wasm.Function{{TypeIndex: 0}},
		CodeSection: []wasm.Code{{Body: []wasm.Instruction{
			i32Const(3),
			instr(wasm.OpcodeGlobalSet, wasm.IndexImm{Index: 0}),
			end(),
		}}},
	}
	require.NoError(t, Module(m, Config{}))

	// Assigning an immutable global fails.
	m.ImportSection[0].DescGlobal.Mutable = false
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "global.set of immutable global 0")
}

func TestModule_ConstExprMutableGlobal(t *testing.T) {
	m := &wasm.Module{
		ImportSection: []wasm.Import{{
			Module: "env", Name: "g", Type: wasm.ExternTypeGlobal,
			DescGlobal: wasm.GlobalType{ValType: wasm.ValueTypeI32, Mutable: true},
		}},
		GlobalSection: []wasm.Global{{
			Type: wasm.GlobalType{ValType: wasm.ValueTypeI32},
			Init: wasm.ConstantExpression{Instr: instr(wasm.OpcodeGlobalGet, wasm.IndexImm{Index: 0})},
		}},
	}
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "constant expression references mutable global")
}

func TestModule_ConstExprRules(t *testing.T) {
	tests := []struct {
		name     string
		init     wasm.Instruction
		valType  wasm.ValueType
		expected string // empty means valid
	}{
		{name: "i32 const", init: i32Const(1), valType: wasm.ValueTypeI32},
		{name: "f64 const", init: instr(wasm.OpcodeF64Const, wasm.F64Imm{}), valType: wasm.ValueTypeF64},
		{name: "type mismatch", init: i32Const(1), valType: wasm.ValueTypeI64,
			expected: "expected i64 but the expression produces i32"},
		{name: "not constant", init: instr(wasm.OpcodeI32Add, wasm.NoImm{}), valType: wasm.ValueTypeI32,
			expected: "i32.add is not allowed in a constant expression"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			m := &wasm.Module{GlobalSection: []wasm.Global{{
				Type: wasm.GlobalType{ValType: tc.valType},
				Init: wasm.ConstantExpression{Instr: tc.init},
			}}}
			err := Module(m, Config{})
			if tc.expected == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expected)
			}
		})
	}
}

func TestModule_DuplicateExportName(t *testing.T) {
	m := funcModule(nil, nil, end())
	m.ExportSection = []wasm.Export{
		{Name: "f", Type: wasm.ExternTypeFunc, Index: 0},
		{Name: "f", Type: wasm.ExternTypeFunc, Index: 0},
	}
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `export[1] duplicates name "f"`)
}

func TestModule_AtMostOneMemory(t *testing.T) {
	m := &wasm.Module{MemorySection: []wasm.Memory{
		{Limits: wasm.Limits{Min: 1}},
		{Limits: wasm.Limits{Min: 1}},
	}}
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "at most one memory")
}

func TestModule_MultipleTablesNeedReferenceTypes(t *testing.T) {
	m := &wasm.Module{TableSection: []wasm.Table{
		{Type: wasm.ValueTypeFuncref, Limits: wasm.Limits{Min: 1}},
		{Type: wasm.ValueTypeFuncref, Limits: wasm.Limits{Min: 1}},
	}}
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "multiple tables invalid")

	require.NoError(t, Module(m, Config{Features: wasm.FeaturesV2}))
}

func TestModule_StartFunctionType(t *testing.T) {
	m := funcModule(nil, []wasm.ValueType{wasm.ValueTypeI32}, i32Const(1), end())
	m.StartSection = &wasm.StartFunction{FuncIndex: 0}
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid start function type")
}

func TestModule_DataCountMismatch(t *testing.T) {
	m := &wasm.Module{DataCountSection: &wasm.DataCount{Count: 2}}
	err := Module(m, Config{Features: wasm.FeaturesV2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "data count 2 does not match 0 data segments")
}

func TestModule_MemoryInitNeedsDataCount(t *testing.T) {
	m := funcModule(nil, nil,
		i32Const(0), i32Const(0), i32Const(0),
		instr(wasm.OpcodeMemoryInit, wasm.SegmentImm{Segment: 0}),
		end(),
	)
	m.MemorySection = []wasm.Memory{{Limits: wasm.Limits{Min: 1}}}
	err := Module(m, Config{Features: wasm.FeaturesV2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "memory.init requires a data count section")
}

func TestModule_Alignment(t *testing.T) {
	mem := []wasm.Memory{{Limits: wasm.Limits{Min: 1}}}

	m := funcModule(nil, nil,
		i32Const(0),
		instr(wasm.OpcodeI32Load, wasm.MemArg{AlignLog2: 3}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	m.MemorySection = mem
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "alignment 2^3 exceeds natural alignment 4")

	ok := funcModule(nil, nil,
		i32Const(0),
		instr(wasm.OpcodeI32Load, wasm.MemArg{AlignLog2: 2}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	ok.MemorySection = mem
	require.NoError(t, Module(ok, Config{}))
}

func TestModule_AtomicRules(t *testing.T) {
	shared := uint32(2)
	sharedMem := []wasm.Memory{{Limits: wasm.Limits{Min: 1, Max: &shared, Shared: true}}}

	// Atomics demand exactly natural alignment.
	m := funcModule(nil, nil,
		i32Const(0),
		instr(wasm.OpcodeI32AtomicLoad, wasm.MemArg{AlignLog2: 0}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	m.MemorySection = sharedMem
	err := Module(m, Config{Features: wasm.FeaturesV1 | wasm.FeatureThreads})
	require.Error(t, err)
	require.Contains(t, err.Error(), "must equal natural alignment")

	// And a shared memory.
	unshared := funcModule(nil, nil,
		i32Const(0),
		instr(wasm.OpcodeI32AtomicLoad, wasm.MemArg{AlignLog2: 2}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	unshared.MemorySection = []wasm.Memory{{Limits: wasm.Limits{Min: 1}}}
	err = Module(unshared, Config{Features: wasm.FeaturesV1 | wasm.FeatureThreads})
	require.Error(t, err)
	require.Contains(t, err.Error(), "requires a shared memory")

	ok := funcModule(nil, nil,
		i32Const(0),
		instr(wasm.OpcodeI32AtomicLoad, wasm.MemArg{AlignLog2: 2}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	ok.MemorySection = sharedMem
	require.NoError(t, Module(ok, Config{Features: wasm.FeaturesV1 | wasm.FeatureThreads}))
}

func TestModule_SelectRules(t *testing.T) {
	// The untyped select never applies to reference types.
	m := funcModule(nil, nil,
		instr(wasm.OpcodeRefNull, wasm.RefTypeImm{Type: wasm.ValueTypeFuncref}),
		instr(wasm.OpcodeRefNull, wasm.RefTypeImm{Type: wasm.ValueTypeFuncref}),
		i32Const(1),
		instr(wasm.OpcodeSelect, wasm.NoImm{}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	err := Module(m, Config{Features: wasm.FeaturesV2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "without a type annotation cannot select funcref")

	// The annotated form exists for exactly that.
	ok := funcModule(nil, nil,
		instr(wasm.OpcodeRefNull, wasm.RefTypeImm{Type: wasm.ValueTypeFuncref}),
		instr(wasm.OpcodeRefNull, wasm.RefTypeImm{Type: wasm.ValueTypeFuncref}),
		i32Const(1),
		instr(wasm.OpcodeTypedSelect, wasm.ValueTypesImm{Types: []wasm.ValueType{wasm.ValueTypeFuncref}}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	require.NoError(t, Module(ok, Config{Features: wasm.FeaturesV2}))
}

func TestModule_RefFuncMustBeDeclared(t *testing.T) {
	m := funcModule(nil, nil,
		instr(wasm.OpcodeRefFunc, wasm.IndexImm{Index: 0}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}),
		end(),
	)
	err := Module(m, Config{Features: wasm.FeaturesV2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "undeclared function index 0")

	// A declarative element segment declares it.
	m.ElementSection = []wasm.ElementSegment{{
		Mode: wasm.ElementModeDeclarative, Type: wasm.ValueTypeFuncref,
		Indexes: []wasm.Index{0},
	}}
	require.NoError(t, Module(m, Config{Features: wasm.FeaturesV2}))
}

func TestModule_CallIndirect(t *testing.T) {
	m := funcModule(nil, nil,
		i32Const(0),
		instr(wasm.OpcodeCallIndirect, wasm.CallIndirectImm{TypeIndex: 0, TableIndex: 0}),
		end(),
	)
	m.TableSection = []wasm.Table{{Type: wasm.ValueTypeExternref, Limits: wasm.Limits{Min: 1}}}
	err := Module(m, Config{Features: wasm.FeaturesV2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not funcref")

	m.TableSection[0].Type = wasm.ValueTypeFuncref
	require.NoError(t, Module(m, Config{Features: wasm.FeaturesV2}))
}

func TestModule_EventRules(t *testing.T) {
	features := wasm.FeaturesV1 | wasm.FeatureExceptions

	m := &wasm.Module{
		TypeSection:  []wasm.FunctionType{{Results: []wasm.ValueType{wasm.ValueTypeI32}}},
		EventSection: []wasm.EventType{{TypeIndex: 0}},
	}
	err := Module(m, Config{Features: features})
	require.Error(t, err)
	require.Contains(t, err.Error(), "event type must not have results")
}

func TestModule_TryCatchThrow(t *testing.T) {
	features := wasm.FeaturesV1 | wasm.FeatureExceptions
	m := funcModule(nil, nil,
		instr(wasm.OpcodeTry, wasm.BlockTypeImm{Kind: wasm.BlockTypeEmpty}),
		instr(wasm.OpcodeThrow, wasm.IndexImm{Index: 0}),
		instr(wasm.OpcodeCatch, wasm.NoImm{}),
		instr(wasm.OpcodeDrop, wasm.NoImm{}), // drops the exnref
		end(),
		end(),
	)
	m.TypeSection = append(m.TypeSection, wasm.FunctionType{}) // event type
	m.EventSection = []wasm.EventType{{TypeIndex: 1}}
	require.NoError(t, Module(m, Config{Features: features}))
}

// A module valid under a feature set stays valid under any superset.
func TestModule_FeatureMonotonicity(t *testing.T) {
	m := funcModule(nil, []wasm.ValueType{wasm.ValueTypeI32},
		instr(wasm.OpcodeBlock, wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: wasm.ValueTypeI32}),
		i32Const(7),
		end(),
		end(),
	)
	for _, features := range []wasm.Features{
		wasm.FeaturesV1,
		wasm.FeaturesV2,
		wasm.FeaturesV2 | wasm.FeatureThreads | wasm.FeatureTailCall | wasm.FeatureExceptions,
	} {
		require.NoError(t, Module(m, Config{Features: features}), "features %s", features)
	}
}

func TestModule_InstructionAfterFinalEnd(t *testing.T) {
	m := funcModule(nil, nil, end(), i32Const(1))
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "instruction after the function's final end")
}

func TestModule_MissingFinalEnd(t *testing.T) {
	m := funcModule(nil, nil, i32Const(1), instr(wasm.OpcodeDrop, wasm.NoImm{}))
	err := Module(m, Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "function body must end with a matching end")
}
