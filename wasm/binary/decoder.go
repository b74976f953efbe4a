package binary

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wasmkit/wasmkit/wasm"
)

// DecoderConfig adjusts decoding. The zero value decodes a WebAssembly 1.0
// module with no logging, collecting diagnostics internally.
type DecoderConfig struct {
	// Features gates the post-MVP grammar. Defaults to wasm.FeaturesV1.
	Features wasm.Features
	// Sink receives diagnostics. Defaults to a fresh wasm.ErrorList whose
	// combined error DecodeModule returns.
	Sink wasm.ErrorSink
	// Log receives debug traces per section. Defaults to a no-op logger.
	Log *zap.Logger
	// ZeroCopy keeps data segment and custom section payloads as views into
	// the input buffer instead of copies. The caller must then keep the input
	// alive and unchanged for the life of the module.
	ZeroCopy bool
}

func (c DecoderConfig) withDefaults() (DecoderConfig, *wasm.ErrorList) {
	var list *wasm.ErrorList
	if c.Sink == nil {
		list = &wasm.ErrorList{}
		c.Sink = list
	}
	if c.Features == 0 {
		c.Features = wasm.FeaturesV1
	}
	if c.Log == nil {
		c.Log = zap.NewNop()
	}
	return c, list
}

// DecodeModule decodes buf into a module.
//
// Decoding is best effort: every independent problem is reported to the sink
// and the module carries whatever decoded cleanly. When no sink is configured
// the returned error combines all recorded diagnostics; with a caller-managed
// sink the error is always nil and the sink holds the verdict.
func DecodeModule(buf []byte, config DecoderConfig) (*wasm.Module, error) {
	config, list := config.withDefaults()

	m := decodeModule(buf, config)
	if list != nil {
		return m, list.Err()
	}
	return m, nil
}

func decodeModule(buf []byte, config DecoderConfig) *wasm.Module {
	sink, features, log := config.Sink, config.Features, config.Log

	mr := NewModuleReader(buf, sink)
	m := &wasm.Module{}

	lastOrder := 0
	for {
		s, ok := mr.Next()
		if !ok {
			break
		}
		log.Debug("decoding section",
			zap.String("section", wasm.SectionIDName(s.ID)),
			zap.Uint32("offset", s.Loc.Offset),
			zap.Uint32("size", s.Body.Len()))

		if s.ID != wasm.SectionIDCustom {
			if order := sectionOrder(s.ID); order == 0 {
				sink.OnError(s.Loc, fmt.Sprintf("invalid section id: %d", s.ID))
				continue
			} else if order <= lastOrder {
				sink.OnError(s.Loc, fmt.Sprintf("section %s out of order", wasm.SectionIDName(s.ID)))
				// Keep decoding: the content may still be useful.
			} else {
				lastOrder = order
			}
		}

		wasm.Context(sink, s.Loc, fmt.Sprintf("%s section", wasm.SectionIDName(s.ID)), func() {
			decodeSection(m, s, features, sink, config.ZeroCopy)
		})

		if s.ID != wasm.SectionIDCustom && s.Body.Len() != 0 {
			sink.OnError(s.Body.Here(), fmt.Sprintf("invalid section length: %d bytes remain undecoded", s.Body.Len()))
		}
	}

	if len(m.FunctionSection) != len(m.CodeSection) {
		sink.OnError(wasm.Location{Offset: uint32(len(buf))},
			fmt.Sprintf("function and code section have inconsistent lengths: %d != %d",
				len(m.FunctionSection), len(m.CodeSection)))
	}
	return m
}

func decodeSection(m *wasm.Module, s Section, features wasm.Features, sink wasm.ErrorSink, zeroCopy bool) {
	switch s.ID {
	case wasm.SectionIDCustom:
		decodeCustom(m, s, sink, zeroCopy)

	case wasm.SectionIDType:
		tr, err := NewTypeSectionReader(s, features, sink)
		if err != nil {
			sink.OnError(s.Loc, err.Error())
			return
		}
		m.TypeSection = make([]wasm.FunctionType, 0, tr.Count())
		for {
			ft, ok := tr.Next()
			if !ok {
				break
			}
			m.TypeSection = append(m.TypeSection, ft)
		}

	case wasm.SectionIDImport:
		ir, err := NewImportSectionReader(s, features, sink)
		if err != nil {
			sink.OnError(s.Loc, err.Error())
			return
		}
		m.ImportSection = make([]wasm.Import, 0, ir.Count())
		for {
			im, ok := ir.Next()
			if !ok {
				break
			}
			m.ImportSection = append(m.ImportSection, im)
		}

	case wasm.SectionIDFunction:
		eachEntry(s, sink, "function", func(r *Reader) error {
			start := r.Pos()
			idx, err := r.ReadU32()
			if err != nil {
				return err
			}
			m.FunctionSection = append(m.FunctionSection, wasm.Function{TypeIndex: idx, Loc: r.From(start)})
			return nil
		})

	case wasm.SectionIDTable:
		eachEntry(s, sink, "table", func(r *Reader) error {
			t, err := decodeTable(r, features)
			if err != nil {
				return err
			}
			m.TableSection = append(m.TableSection, t)
			return nil
		})

	case wasm.SectionIDMemory:
		eachEntry(s, sink, "memory", func(r *Reader) error {
			mem, err := decodeMemory(r, features)
			if err != nil {
				return err
			}
			m.MemorySection = append(m.MemorySection, mem)
			return nil
		})

	case wasm.SectionIDGlobal:
		eachEntry(s, sink, "global", func(r *Reader) error {
			g, err := decodeGlobal(r, features, sink)
			if err != nil {
				return err
			}
			m.GlobalSection = append(m.GlobalSection, g)
			return nil
		})

	case wasm.SectionIDEvent:
		eachEntry(s, sink, "event", func(r *Reader) error {
			e, err := decodeEventType(r, features)
			if err != nil {
				return err
			}
			m.EventSection = append(m.EventSection, e)
			return nil
		})

	case wasm.SectionIDExport:
		eachEntry(s, sink, "export", func(r *Reader) error {
			e, err := decodeExport(r)
			if err != nil {
				return err
			}
			m.ExportSection = append(m.ExportSection, e)
			return nil
		})

	case wasm.SectionIDStart:
		start := s.Body.Pos()
		idx, err := s.Body.ReadU32()
		if err != nil {
			sink.OnError(s.Loc, fmt.Sprintf("read start function index: %v", err))
			return
		}
		if m.StartSection != nil {
			sink.OnError(s.Loc, "multiple start sections")
			return
		}
		m.StartSection = &wasm.StartFunction{FuncIndex: idx, Loc: s.Body.From(start)}

	case wasm.SectionIDElement:
		eachEntry(s, sink, "element", func(r *Reader) error {
			e, err := decodeElementSegment(r, features, sink)
			if err != nil {
				return err
			}
			m.ElementSection = append(m.ElementSection, e)
			return nil
		})

	case wasm.SectionIDDataCount:
		if err := features.RequireEnabled(wasm.FeatureBulkMemory); err != nil {
			sink.OnError(s.Loc, fmt.Sprintf("data count section invalid as %v", err))
			return
		}
		start := s.Body.Pos()
		n, err := s.Body.ReadU32()
		if err != nil {
			sink.OnError(s.Loc, fmt.Sprintf("read data count: %v", err))
			return
		}
		m.DataCountSection = &wasm.DataCount{Count: n, Loc: s.Body.From(start)}

	case wasm.SectionIDCode:
		cr, err := NewCodeSectionReader(s, features, sink)
		if err != nil {
			sink.OnError(s.Loc, err.Error())
			return
		}
		m.CodeSection = make([]wasm.Code, 0, cr.Count())
		for {
			c, ok := cr.Next()
			if !ok {
				break
			}
			m.CodeSection = append(m.CodeSection, c)
		}

	case wasm.SectionIDData:
		eachEntry(s, sink, "data segment", func(r *Reader) error {
			d, err := decodeDataSegment(r, features, sink, !zeroCopy)
			if err != nil {
				return err
			}
			m.DataSection = append(m.DataSection, d)
			return nil
		})
	}
}

func decodeCustom(m *wasm.Module, s Section, sink wasm.ErrorSink, zeroCopy bool) {
	if s.Name == "name" {
		if m.NameSection != nil {
			sink.OnError(s.Loc, `redundant custom section "name"`)
			return
		}
		ns, err := decodeNameSection(s.Body)
		if err != nil {
			sink.OnError(s.Loc, fmt.Sprintf("decode name section: %v", err))
			return
		}
		m.NameSection = ns
		return
	}

	data, err := s.Body.ReadBytes(s.Body.Len())
	if err != nil {
		sink.OnError(s.Loc, err.Error())
		return
	}
	if !zeroCopy {
		data = append([]byte(nil), data...)
	}
	m.CustomSections = append(m.CustomSections, wasm.CustomSection{Name: s.Name, Data: data, Loc: s.Loc})
}

// eachEntry reads a section's vector count, then applies fn per entry,
// reporting the first failure and abandoning the rest of the section.
func eachEntry(s Section, sink wasm.ErrorSink, desc string, fn func(*Reader) error) {
	n, err := s.Body.ReadCount()
	if err != nil {
		sink.OnError(s.Loc, fmt.Sprintf("get size of vector: %v", err))
		return
	}
	for i := uint32(0); i < n; i++ {
		start := s.Body.Pos()
		if err := fn(s.Body); err != nil {
			sink.OnError(s.Body.From(start), fmt.Sprintf("read %d-th %s: %v", i, desc, err))
			return
		}
	}
}
