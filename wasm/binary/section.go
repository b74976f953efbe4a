package binary

import (
	"bytes"
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
)

// Section is one framed section: its ID, the carved body, and for custom
// sections the decoded name. The body reader is positioned after the name for
// custom sections, at the first entry otherwise.
type Section struct {
	ID   wasm.SectionID
	Name string // ID == wasm.SectionIDCustom
	Body *Reader

	Loc wasm.Location
}

// ModuleReader splits a module image into its header and a lazy stream of
// sections. Construction consumes the header; each Next call frames one
// section without decoding its entries.
//
// A header mismatch is reported to the sink and framing continues best
// effort, assuming the layout is otherwise current.
type ModuleReader struct {
	r    *Reader
	sink wasm.ErrorSink
	fail bool
}

// NewModuleReader frames buf, reporting header problems to sink.
func NewModuleReader(buf []byte, sink wasm.ErrorSink) *ModuleReader {
	m := &ModuleReader{r: NewReader(buf), sink: sink}

	magic, err := m.r.ReadBytes(4)
	if err != nil || !bytes.Equal(magic, Magic) {
		sink.OnError(wasm.Location{Offset: 0, Length: 4}, "invalid magic number")
	}
	version, err := m.r.ReadBytes(4)
	if err != nil || !bytes.Equal(version, Version) {
		sink.OnError(wasm.Location{Offset: 4, Length: 4}, "invalid version header")
	}
	return m
}

// Next frames the next section. ok is false at end of input or after a
// framing error was reported.
func (m *ModuleReader) Next() (s Section, ok bool) {
	if m.fail || m.r.Len() == 0 {
		return
	}
	start := m.r.Pos()

	id, err := m.r.ReadByte()
	if err != nil {
		m.fail = true
		m.sink.OnError(m.r.Here(), fmt.Sprintf("read section id: %v", err))
		return
	}

	size, err := m.r.ReadU32()
	if err != nil {
		m.fail = true
		wasm.Context(m.sink, m.r.From(start), fmt.Sprintf("%s section", wasm.SectionIDName(id)), func() {
			m.sink.OnError(m.r.From(start), fmt.Sprintf("get size of section: %v", err))
		})
		return
	}

	body, err := m.r.Sub(size)
	if err != nil {
		m.fail = true
		wasm.Context(m.sink, m.r.From(start), fmt.Sprintf("%s section", wasm.SectionIDName(id)), func() {
			m.sink.OnError(m.r.From(start), err.Error())
		})
		return
	}

	s = Section{ID: id, Body: body, Loc: wasm.Location{Offset: start, Length: m.r.Pos() - start}}
	if id == wasm.SectionIDCustom {
		if s.Name, err = body.ReadName(); err != nil {
			m.fail = true
			m.sink.OnError(s.Loc, fmt.Sprintf("read custom section name: %v", err))
			return
		}
	}
	return s, true
}

// sectionEntries is the shared cursor of the typed section readers: a
// declared entry count and a stop-on-error flag.
type sectionEntries struct {
	r    *Reader
	sink wasm.ErrorSink
	n, i uint32
	fail bool
}

func newSectionEntries(s Section, sink wasm.ErrorSink) (sectionEntries, error) {
	n, err := s.Body.ReadCount()
	if err != nil {
		return sectionEntries{}, fmt.Errorf("get size of vector: %w", err)
	}
	return sectionEntries{r: s.Body, sink: sink, n: n}, nil
}

// Count returns the declared number of entries.
func (e *sectionEntries) Count() uint32 { return e.n }

func (e *sectionEntries) more() bool { return !e.fail && e.i < e.n }

func (e *sectionEntries) report(start uint32, desc string, err error) {
	e.fail = true
	e.sink.OnError(e.r.From(start), fmt.Sprintf("read %d-th %s: %v", e.i, desc, err))
}

// TypeSectionReader yields the function types of a type section one at a
// time.
type TypeSectionReader struct {
	sectionEntries
	features wasm.Features
}

// NewTypeSectionReader begins iterating s, which must be a type section.
func NewTypeSectionReader(s Section, features wasm.Features, sink wasm.ErrorSink) (*TypeSectionReader, error) {
	e, err := newSectionEntries(s, sink)
	if err != nil {
		return nil, err
	}
	return &TypeSectionReader{sectionEntries: e, features: features}, nil
}

// Next decodes the next function type.
func (t *TypeSectionReader) Next() (ft wasm.FunctionType, ok bool) {
	if !t.more() {
		return
	}
	start := t.r.Pos()
	ft, err := decodeFunctionType(t.r, t.features)
	if err != nil {
		t.report(start, "type", err)
		return wasm.FunctionType{}, false
	}
	t.i++
	return ft, true
}

// ImportSectionReader yields the imports of an import section.
type ImportSectionReader struct {
	sectionEntries
	features wasm.Features
}

// NewImportSectionReader begins iterating s, which must be an import section.
func NewImportSectionReader(s Section, features wasm.Features, sink wasm.ErrorSink) (*ImportSectionReader, error) {
	e, err := newSectionEntries(s, sink)
	if err != nil {
		return nil, err
	}
	return &ImportSectionReader{sectionEntries: e, features: features}, nil
}

// Next decodes the next import.
func (t *ImportSectionReader) Next() (im wasm.Import, ok bool) {
	if !t.more() {
		return
	}
	start := t.r.Pos()
	im, err := decodeImport(t.r, t.features, t.sink)
	if err != nil {
		t.report(start, "import", err)
		return wasm.Import{}, false
	}
	t.i++
	return im, true
}

// CodeSectionReader yields the function bodies of a code section. Each body
// is decoded on demand, so a consumer can stop after the function it cares
// about without paying for the rest.
type CodeSectionReader struct {
	sectionEntries
	features wasm.Features
}

// NewCodeSectionReader begins iterating s, which must be a code section.
func NewCodeSectionReader(s Section, features wasm.Features, sink wasm.ErrorSink) (*CodeSectionReader, error) {
	e, err := newSectionEntries(s, sink)
	if err != nil {
		return nil, err
	}
	return &CodeSectionReader{sectionEntries: e, features: features}, nil
}

// Next decodes the next function body.
func (t *CodeSectionReader) Next() (c wasm.Code, ok bool) {
	if !t.more() {
		return
	}
	start := t.r.Pos()
	c, err := decodeCode(t.r, t.features, t.sink)
	if err != nil {
		t.report(start, "code entry", err)
		return wasm.Code{}, false
	}
	t.i++
	return c, true
}
