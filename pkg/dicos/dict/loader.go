package dict

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jacoelho/xsd/pkg/xmlstream"

	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

// DictionaryFormatError is returned when a dictionary descriptor is
// structurally invalid or one of its records can not be parsed. Group and
// Element locate the offending record when known.
type DictionaryFormatError struct {
	Line    int
	Column  int
	Group   string
	Element string
	Msg     string
	Err     error
}

func (e *DictionaryFormatError) Error() string {
	var b strings.Builder
	b.WriteString("dictionary format")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at %d:%d", e.Line, e.Column)
	}
	if e.Group != "" || e.Element != "" {
		fmt.Fprintf(&b, " tag (%s,%s)", e.Group, e.Element)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DictionaryFormatError) Unwrap() error {
	return e.Err
}

// Load parses a dictionary descriptor into a new Dictionary.
//
// The descriptor is XML: a <dictionaries> root holding <dictionary>
// blocks, or a single <dictionary> root. A block's creator attribute scopes
// its tags to that private creator. Each record reads
//
//	<tag group="0010" element="0010" keyword="PatientName" vr="PN" vm="1">Patient's Name</tag>
//
// with optional retired="true". Group and element digits may be x to declare
// a pattern; more specific patterns must precede broader ones.
//
// Inside a creator block a private data element is keyed by its offset in
// the block, so (0029,1010) and (0029,1110) describe the same entry and the
// later record replaces the earlier one.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	if err := d.load(r); err != nil {
		return nil, err
	}
	return d, nil
}

// MustLoad is like Load but panics on error
func MustLoad(r io.Reader) *Dictionary {
	d, err := Load(r)
	if err != nil {
		panic(err)
	}
	return d
}

// Load parses a descriptor and merges it into d. Nothing is merged when the
// descriptor fails to load.
func (d *Dictionary) Load(r io.Reader) error {
	staging := New()
	if err := staging.load(r); err != nil {
		return err
	}
	d.Merge(staging)
	return nil
}

// record is a <tag> element being read
type record struct {
	attrs map[string]string
	name  strings.Builder
	line  int
	col   int
}

func (d *Dictionary) load(r io.Reader) error {
	if r == nil {
		return &DictionaryFormatError{Msg: "nil descriptor"}
	}
	dec, err := xmlstream.NewStringReader(r)
	if err != nil {
		return &DictionaryFormatError{Msg: "xml reader", Err: err}
	}

	var (
		rootSeen bool
		creators []string // open <dictionary> blocks
		rec      *record
		loaded   int
	)
	for {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, col := dec.CurrentPos()
			msg := "xml read"
			if !rootSeen {
				msg = "missing root element"
			}
			return &DictionaryFormatError{Line: line, Column: col, Msg: msg, Err: err}
		}

		switch ev.Kind {
		case xmlstream.EventStartElement:
			local := ev.Name.Local
			if !rootSeen {
				rootSeen = true
				if local != "dictionaries" && local != "dictionary" {
					return &DictionaryFormatError{Line: ev.Line, Column: ev.Column, Msg: fmt.Sprintf("unexpected root element <%s>", local)}
				}
			}
			switch local {
			case "dictionaries":
				if len(creators) > 0 {
					return &DictionaryFormatError{Line: ev.Line, Column: ev.Column, Msg: "<dictionaries> nested in <dictionary>"}
				}
			case "dictionary":
				creator := attrValue(ev.Attrs, "creator")
				if creator == "" && len(creators) > 0 {
					creator = creators[len(creators)-1]
				}
				creators = append(creators, d.ResolvePrivateCreator(creator))
			case "tag":
				if len(creators) == 0 {
					return &DictionaryFormatError{Line: ev.Line, Column: ev.Column, Msg: "<tag> outside <dictionary>"}
				}
				rec = &record{attrs: make(map[string]string, len(ev.Attrs)), line: ev.Line, col: ev.Column}
				for _, a := range ev.Attrs {
					rec.attrs[a.LocalName()] = a.Value()
				}
			default:
				if err := dec.SkipSubtree(); err != nil {
					return &DictionaryFormatError{Line: ev.Line, Column: ev.Column, Msg: "xml skip", Err: err}
				}
			}

		case xmlstream.EventCharData:
			if rec != nil {
				rec.name.Write(ev.Text)
			}

		case xmlstream.EventEndElement:
			switch ev.Name.Local {
			case "tag":
				if rec == nil {
					continue
				}
				e, err := d.parseRecord(rec, creators[len(creators)-1])
				if err != nil {
					return err
				}
				d.Register(e)
				loaded++
				rec = nil
			case "dictionary":
				creators = creators[:len(creators)-1]
			}
		}
	}
	if !rootSeen {
		return &DictionaryFormatError{Msg: "missing root element"}
	}
	slog.Debug("loaded dictionary", "entries", loaded, "creators", len(d.PrivateCreators()))
	return nil
}

func (d *Dictionary) parseRecord(rec *record, creator string) (*Entry, error) {
	group, hasGroup := rec.attrs["group"]
	element, hasElement := rec.attrs["element"]
	fail := func(msg string, err error) error {
		return &DictionaryFormatError{Line: rec.line, Column: rec.col, Group: group, Element: element, Msg: msg, Err: err}
	}
	if !hasGroup {
		return nil, fail("missing group attribute", nil)
	}
	if !hasElement {
		return nil, fail("missing element attribute", nil)
	}
	vmText, ok := rec.attrs["vm"]
	if !ok {
		return nil, fail("missing vm attribute", nil)
	}

	m, err := tag.ParseMaskedParts(group, element)
	if err != nil {
		return nil, fail("invalid tag", err)
	}
	multiplicity, err := d.vms.Parse(vmText)
	if err != nil {
		return nil, fail("invalid vm", err)
	}
	vrs := []vr.VR{vr.NONE}
	if text, ok := rec.attrs["vr"]; ok {
		vrs = vr.ParseList(text)
	}
	name := strings.TrimSpace(rec.name.String())
	keyword := rec.attrs["keyword"]
	retired := isRetired(rec.attrs["retired"])

	if tag.IsWildcard(group) || tag.IsWildcard(element) {
		return NewMaskedEntry(m, creator, name, keyword, multiplicity, retired, vrs...), nil
	}
	return NewEntry(m.Tag().WithCreator(creator), name, keyword, multiplicity, retired, vrs...), nil
}

func attrValue(attrs []xmlstream.StringAttr, local string) string {
	for _, a := range attrs {
		if a.LocalName() == local {
			return a.Value()
		}
	}
	return ""
}

func isRetired(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "ret", "retired", "1":
		return true
	}
	return false
}
