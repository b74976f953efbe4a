package validate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wasmkit/wasmkit/wasm"
)

// Config adjusts validation. The zero value checks against WebAssembly 1.0
// with no logging, collecting diagnostics internally.
type Config struct {
	// Features gates the post-MVP grammar. Defaults to wasm.FeaturesV1.
	Features wasm.Features
	// Sink receives diagnostics. Defaults to a fresh wasm.ErrorList whose
	// combined error Module returns.
	Sink wasm.ErrorSink
	// Log receives debug traces per function validated. Defaults to a no-op
	// logger.
	Log *zap.Logger
}

// Module validates m. Validation reports as many independent errors as it
// can: a failing section never stops the later sections from being checked
// against the context accumulated so far.
//
// When no sink is configured the returned error combines all recorded
// diagnostics; with a caller-managed sink the error is always nil and the
// sink holds the verdict.
func Module(m *wasm.Module, config Config) error {
	var list *wasm.ErrorList
	if config.Sink == nil {
		list = &wasm.ErrorList{}
		config.Sink = list
	}
	if config.Features == 0 {
		config.Features = wasm.FeaturesV1
	}
	if config.Log == nil {
		config.Log = zap.NewNop()
	}

	c := newContext(m, config)
	c.validate()

	if list != nil {
		return list.Err()
	}
	return nil
}

// globalInfo tracks one entry of the global index space.
type globalInfo struct {
	typ      wasm.GlobalType
	imported bool
}

// context is the module context: the typed index spaces accumulated section
// by section, against which instructions and segments resolve their indexes.
type context struct {
	m        *wasm.Module
	features wasm.Features
	sink     wasm.ErrorSink
	log      *zap.Logger

	// funcs holds the type index of every function, imports first.
	funcs    []wasm.Index
	tables   []wasm.Table
	memories []wasm.Memory
	globals  []globalInfo
	events   []wasm.EventType

	importedFuncs   uint32
	importedGlobals uint32

	// declaredFuncs are the function indexes ref.func may reference: those
	// mentioned by an element segment, an export, or a global initializer.
	declaredFuncs map[wasm.Index]struct{}
}

func newContext(m *wasm.Module, config Config) *context {
	return &context{
		m:             m,
		features:      config.Features,
		sink:          config.Sink,
		log:           config.Log,
		declaredFuncs: map[wasm.Index]struct{}{},
	}
}

// validate walks the sections in canonical order. Context fields mutate only
// after the entry providing them checked out, so later checks see a coherent
// context even when earlier entries failed.
func (c *context) validate() {
	c.validateImports()
	c.validateFunctions()
	c.validateTables()
	c.validateMemories()
	c.validateEvents()
	c.collectDeclaredFuncs()
	c.validateGlobals()
	c.validateExports()
	c.validateStart()
	c.validateElements()
	c.validateDataCount()
	c.validateCode()
	c.validateData()
}

func (c *context) errf(loc wasm.Location, format string, args ...interface{}) {
	c.sink.OnError(loc, fmt.Sprintf(format, args...))
}

func (c *context) hasType(idx wasm.Index) bool {
	return idx < uint32(len(c.m.TypeSection))
}

func (c *context) funcType(typeIndex wasm.Index) *wasm.FunctionType {
	return &c.m.TypeSection[typeIndex]
}

func (c *context) validateImports() {
	for i := range c.m.ImportSection {
		im := &c.m.ImportSection[i]
		switch im.Type {
		case wasm.ExternTypeFunc:
			if !c.hasType(im.DescFunc) {
				c.errf(im.Loc, "import[%d] %q.%q: type index %d out of range", i, im.Module, im.Name, im.DescFunc)
				continue
			}
			c.funcs = append(c.funcs, im.DescFunc)
			c.importedFuncs++
		case wasm.ExternTypeTable:
			c.tables = append(c.tables, im.DescTable)
		case wasm.ExternTypeMemory:
			c.memories = append(c.memories, im.DescMem)
		case wasm.ExternTypeGlobal:
			c.globals = append(c.globals, globalInfo{typ: im.DescGlobal, imported: true})
			c.importedGlobals++
		case wasm.ExternTypeEvent:
			if !c.hasType(im.DescEvent.TypeIndex) {
				c.errf(im.Loc, "import[%d] %q.%q: event type index %d out of range", i, im.Module, im.Name, im.DescEvent.TypeIndex)
				continue
			}
			c.events = append(c.events, im.DescEvent)
		}
	}
}

func (c *context) validateFunctions() {
	for i := range c.m.FunctionSection {
		f := &c.m.FunctionSection[i]
		if !c.hasType(f.TypeIndex) {
			c.errf(f.Loc, "function[%d]: type index %d out of range", i, f.TypeIndex)
			// Keep the index space aligned with the code section by assuming
			// type zero, so later functions still validate.
			c.funcs = append(c.funcs, 0)
			continue
		}
		c.funcs = append(c.funcs, f.TypeIndex)
	}
}

func (c *context) validateTables() {
	for i := range c.m.TableSection {
		c.tables = append(c.tables, c.m.TableSection[i])
	}
	if len(c.tables) > 1 {
		if err := c.features.RequireEnabled(wasm.FeatureReferenceTypes); err != nil {
			loc := wasm.Location{}
			if len(c.m.TableSection) > 0 {
				loc = c.m.TableSection[0].Loc
			}
			c.errf(loc, "multiple tables invalid as %v", err)
		}
	}
}

func (c *context) validateMemories() {
	for i := range c.m.MemorySection {
		c.memories = append(c.memories, c.m.MemorySection[i])
	}
	if len(c.memories) > 1 {
		loc := wasm.Location{}
		if len(c.m.MemorySection) > 0 {
			loc = c.m.MemorySection[0].Loc
		}
		c.errf(loc, "at most one memory is allowed, but found %d", len(c.memories))
	}
}

func (c *context) validateEvents() {
	for i := range c.m.EventSection {
		e := &c.m.EventSection[i]
		if !c.hasType(e.TypeIndex) {
			c.errf(e.Loc, "event[%d]: type index %d out of range", i, e.TypeIndex)
			continue
		}
		if ft := c.funcType(e.TypeIndex); len(ft.Results) != 0 {
			c.errf(e.Loc, "event[%d]: event type must not have results but has %d", i, len(ft.Results))
			continue
		}
		c.events = append(c.events, *e)
	}
}

// collectDeclaredFuncs gathers the functions ref.func may reference before
// any constant expression is validated: global initializers may already use
// them.
func (c *context) collectDeclaredFuncs() {
	for i := range c.m.ExportSection {
		e := &c.m.ExportSection[i]
		if e.Type == wasm.ExternTypeFunc {
			c.declaredFuncs[e.Index] = struct{}{}
		}
	}
	for i := range c.m.ElementSection {
		seg := &c.m.ElementSection[i]
		for _, idx := range seg.Indexes {
			c.declaredFuncs[idx] = struct{}{}
		}
		for j := range seg.Exprs {
			if seg.Exprs[j].Instr.Opcode == wasm.OpcodeRefFunc {
				if imm, ok := seg.Exprs[j].Instr.Imm.(wasm.IndexImm); ok {
					c.declaredFuncs[imm.Index] = struct{}{}
				}
			}
		}
	}
	for i := range c.m.GlobalSection {
		g := &c.m.GlobalSection[i]
		if g.Init.Instr.Opcode == wasm.OpcodeRefFunc {
			if imm, ok := g.Init.Instr.Imm.(wasm.IndexImm); ok {
				c.declaredFuncs[imm.Index] = struct{}{}
			}
		}
	}
}

func (c *context) validateGlobals() {
	for i := range c.m.GlobalSection {
		g := &c.m.GlobalSection[i]
		c.validateConstExpr(&g.Init, g.Type.ValType, fmt.Sprintf("global[%d] init", i))
		c.globals = append(c.globals, globalInfo{typ: g.Type})
	}
}

func (c *context) validateExports() {
	names := make(map[string]struct{}, len(c.m.ExportSection))
	for i := range c.m.ExportSection {
		e := &c.m.ExportSection[i]
		if _, ok := names[e.Name]; ok {
			c.errf(e.Loc, "export[%d] duplicates name %q", i, e.Name)
		} else {
			names[e.Name] = struct{}{}
		}

		var max int
		switch e.Type {
		case wasm.ExternTypeFunc:
			max = len(c.funcs)
		case wasm.ExternTypeTable:
			max = len(c.tables)
		case wasm.ExternTypeMemory:
			max = len(c.memories)
		case wasm.ExternTypeGlobal:
			max = len(c.globals)
		case wasm.ExternTypeEvent:
			max = len(c.events)
		}
		if int(e.Index) >= max {
			c.errf(e.Loc, "export[%d] %q: unknown %s index %d", i, e.Name, wasm.ExternTypeName(e.Type), e.Index)
		}
	}
}

func (c *context) validateStart() {
	s := c.m.StartSection
	if s == nil {
		return
	}
	if int(s.FuncIndex) >= len(c.funcs) {
		c.errf(s.Loc, "start function index %d out of range", s.FuncIndex)
		return
	}
	if !c.hasType(c.funcs[s.FuncIndex]) {
		return // already reported against the function section
	}
	ft := c.funcType(c.funcs[s.FuncIndex])
	if len(ft.Params) != 0 || len(ft.Results) != 0 {
		c.errf(s.Loc, "invalid start function type: %s", ft)
	}
}

func (c *context) validateElements() {
	for i := range c.m.ElementSection {
		seg := &c.m.ElementSection[i]

		if seg.Mode == wasm.ElementModeActive {
			if int(seg.TableIndex) >= len(c.tables) {
				c.errf(seg.Loc, "element[%d]: unknown table index %d", i, seg.TableIndex)
			} else if c.tables[seg.TableIndex].Type != seg.Type {
				c.errf(seg.Loc, "element[%d]: %s elements do not match %s table", i,
					wasm.ValueTypeName(seg.Type), wasm.ValueTypeName(c.tables[seg.TableIndex].Type))
			}
			c.validateConstExpr(&seg.Offset, wasm.ValueTypeI32, fmt.Sprintf("element[%d] offset", i))
		}

		for _, idx := range seg.Indexes {
			if int(idx) >= len(c.funcs) {
				c.errf(seg.Loc, "element[%d]: unknown function index %d", i, idx)
			}
		}
		for j := range seg.Exprs {
			c.validateConstExpr(&seg.Exprs[j], seg.Type, fmt.Sprintf("element[%d] initializer %d", i, j))
		}
	}
}

func (c *context) validateDataCount() {
	dc := c.m.DataCountSection
	if dc == nil {
		return
	}
	if int(dc.Count) != len(c.m.DataSection) {
		c.errf(dc.Loc, "data count %d does not match %d data segments", dc.Count, len(c.m.DataSection))
	}
}

func (c *context) validateCode() {
	if len(c.m.CodeSection) != len(c.m.FunctionSection) {
		loc := wasm.Location{}
		if len(c.m.CodeSection) > 0 {
			loc = c.m.CodeSection[0].Loc
		}
		c.errf(loc, "function and code section have inconsistent lengths: %d != %d",
			len(c.m.FunctionSection), len(c.m.CodeSection))
	}

	sts := &stacks{}
	n := len(c.m.CodeSection)
	if len(c.m.FunctionSection) < n {
		n = len(c.m.FunctionSection)
	}
	for i := 0; i < n; i++ {
		idx := c.importedFuncs + uint32(i)
		if !c.hasType(c.funcs[idx]) {
			continue // already reported against the function section
		}
		c.log.Debug("validating function", zap.Uint32("index", idx))
		v := &funcValidator{
			context: c,
			sts:     sts,
			code:    &c.m.CodeSection[i],
			typ:     c.funcType(c.funcs[idx]),
		}
		wasm.Context(c.sink, c.m.CodeSection[i].Loc, fmt.Sprintf("function[%d]", idx), v.validate)
	}
}

func (c *context) validateData() {
	for i := range c.m.DataSection {
		seg := &c.m.DataSection[i]
		if seg.Mode != wasm.DataModeActive {
			continue
		}
		if int(seg.MemoryIndex) >= len(c.memories) {
			c.errf(seg.Loc, "data[%d]: unknown memory index %d", i, seg.MemoryIndex)
		}
		c.validateConstExpr(&seg.Offset, wasm.ValueTypeI32, fmt.Sprintf("data[%d] offset", i))
	}
}
