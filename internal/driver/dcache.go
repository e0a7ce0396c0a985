// Package driver coordinates per-file diagnostic collection and caching so
// unchanged sources can replay their diagnostics without re-analysis.
package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lumen/internal/diag"
	"lumen/internal/num"
	"lumen/internal/source"
)

// Digest identifies cached content by its sha256.
type Digest = [32]byte

// Current schema version - increment when the payload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores diagnostic bags per content digest on disk.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// NewDiskCache returns a cache rooted at dir. The directory is created
// lazily on first Put.
func NewDiskCache(dir string) *DiskCache {
	return &DiskCache{dir: dir}
}

// OpenDiskCache initializes a disk cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// diskPayload is the serialized form of a diagnostic bag.
type diskPayload struct {
	Schema uint16
	Diags  []cachedDiag
}

type cachedDiag struct {
	Severity uint8
	Template string
	Primary  cachedSpan
	Args     []cachedArg
	Labels   []cachedLabel
	Notes    []cachedNote
	Suggests []cachedSuggest
}

type cachedSpan struct {
	File  uint32
	Start uint32
	End   uint32
}

type cachedArg struct {
	Name string
	Kind uint8
	// Number payload, split into limbs; msgpack has no native 128-bit ints.
	NumHi int64
	NumLo uint64
	Str   string
	List  []string
}

type cachedLabel struct {
	Span     cachedSpan
	Text     string
	Template string
}

type cachedNote struct {
	Span     cachedSpan
	Template string
}

type cachedSuggest struct {
	Span        cachedSpan
	Template    string
	Replacement string
	Style       uint8
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "diags", hexKey+".mp")
}

// Put serializes the bag and writes it atomically under the digest key.
func (c *DiskCache) Put(key Digest, bag *diag.Bag) error {
	if c == nil || bag == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := encodeBag(bag)
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) //nolint:errcheck // best-effort cleanup; rename may have consumed it.

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close() //nolint:errcheck,gosec // encode error wins.
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the bag stored under the digest key. A missing entry or a
// schema mismatch is a miss, not an error.
func (c *DiskCache) Get(key Digest) (*diag.Bag, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close() //nolint:errcheck // read-only handle.

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	return decodeBag(payload), true, nil
}

func encodeBag(bag *diag.Bag) diskPayload {
	payload := diskPayload{Schema: diskCacheSchemaVersion}
	for _, d := range bag.Items() {
		payload.Diags = append(payload.Diags, encodeDiag(d))
	}
	return payload
}

func encodeDiag(d *diag.Diagnostic) cachedDiag {
	out := cachedDiag{
		Severity: uint8(d.Severity),
		Template: string(d.Template),
		Primary:  encodeSpan(d.Primary),
	}
	for _, a := range d.Args() {
		ca := cachedArg{Name: a.Name, Kind: uint8(a.Value.Kind())}
		switch a.Value.Kind() {
		case diag.ArgNumber:
			n := a.Value.Number()
			ca.NumHi, ca.NumLo = n.Hi, n.Lo
		case diag.ArgStr:
			ca.Str = a.Value.Str()
		case diag.ArgStrList:
			ca.List = a.Value.StrList()
		}
		out.Args = append(out.Args, ca)
	}
	for _, l := range d.Labels {
		out.Labels = append(out.Labels, cachedLabel{Span: encodeSpan(l.Span), Text: l.Text, Template: string(l.Template)})
	}
	for _, n := range d.Notes {
		out.Notes = append(out.Notes, cachedNote{Span: encodeSpan(n.Span), Template: string(n.Template)})
	}
	for _, s := range d.Suggestions {
		out.Suggests = append(out.Suggests, cachedSuggest{
			Span:        encodeSpan(s.Span),
			Template:    string(s.Template),
			Replacement: s.Replacement,
			Style:       uint8(s.Style),
		})
	}
	return out
}

func decodeBag(payload diskPayload) *diag.Bag {
	bag := diag.NewBag(len(payload.Diags))
	for _, cd := range payload.Diags {
		bag.Add(decodeDiag(cd))
	}
	return bag
}

func decodeDiag(cd cachedDiag) *diag.Diagnostic {
	d := diag.New(diag.Severity(cd.Severity), diag.TemplateKey(cd.Template), decodeSpan(cd.Primary))
	for _, ca := range cd.Args {
		switch diag.ArgKind(ca.Kind) {
		case diag.ArgNumber:
			d.Arg(ca.Name, diag.NumberValue(num.Int128{Hi: ca.NumHi, Lo: ca.NumLo}))
		case diag.ArgStr:
			d.Arg(ca.Name, diag.StrValue(ca.Str))
		case diag.ArgStrList:
			d.Arg(ca.Name, diag.StrListValue(ca.List))
		}
	}
	for _, l := range cd.Labels {
		if l.Template != "" {
			d.LabelKey(decodeSpan(l.Span), diag.TemplateKey(l.Template))
		} else {
			d.SpanLabel(decodeSpan(l.Span), l.Text)
		}
	}
	for _, n := range cd.Notes {
		d.NoteKey(decodeSpan(n.Span), diag.TemplateKey(n.Template))
	}
	for _, s := range cd.Suggests {
		d.Suggest(decodeSpan(s.Span), diag.TemplateKey(s.Template), s.Replacement, diag.SuggestionStyle(s.Style))
	}
	return d
}

func encodeSpan(sp source.Span) cachedSpan {
	return cachedSpan{File: uint32(sp.File), Start: sp.Start, End: sp.End}
}

func decodeSpan(cs cachedSpan) source.Span {
	return source.Span{File: source.FileID(cs.File), Start: cs.Start, End: cs.End}
}
