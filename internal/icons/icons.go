// Package icons maps file paths to the glyphs rendered alongside tab labels.
package icons

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	Default   = "📄"
	Untitled  = "📝"
	Code      = "⌨"
	Markup    = "📑"
	Config    = "⚙"
	Image     = "🖼"
	Archive   = "📦"
	Shell     = "🐚"
	Directory = "📁"
)

var byExtension = map[string]string{
	".go":   Code,
	".c":    Code,
	".h":    Code,
	".cpp":  Code,
	".hpp":  Code,
	".rs":   Code,
	".py":   Code,
	".js":   Code,
	".ts":   Code,
	".java": Code,
	".md":   Markup,
	".html": Markup,
	".xml":  Markup,
	".json": Config,
	".yaml": Config,
	".yml":  Config,
	".toml": Config,
	".ini":  Config,
	".mod":  Config,
	".sum":  Config,
	".png":  Image,
	".jpg":  Image,
	".jpeg": Image,
	".gif":  Image,
	".svg":  Image,
	".zip":  Archive,
	".tar":  Archive,
	".gz":   Archive,
	".sh":   Shell,
	".bash": Shell,
	".zsh":  Shell,
	".fish": Shell,
}

// Provider looks up icons for file paths. Paths without a recognised
// extension are sniffed with mimetype, and the result is cached per path.
type Provider struct {
	cache map[string]string
}

func NewProvider() *Provider {
	return &Provider{cache: make(map[string]string)}
}

// Icon returns the icon for the file at path. An empty path denotes an
// untitled document.
func (p *Provider) Icon(path string) string {
	if path == "" {
		return Untitled
	}
	if icon, ok := byExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return icon
	}
	if icon, ok := p.cache[path]; ok {
		return icon
	}
	icon, err := sniff(path)
	if err != nil {
		// Not cached: the file may not exist until it is first saved.
		return Default
	}
	p.cache[path] = icon
	return icon
}

func sniff(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	for m := mtype; m != nil; m = m.Parent() {
		switch {
		case m.Is("text/x-shellscript"):
			return Shell, nil
		case strings.HasPrefix(m.String(), "image/"):
			return Image, nil
		case m.Is("application/zip"), m.Is("application/gzip"), m.Is("application/x-tar"):
			return Archive, nil
		case m.Is("application/json"), m.Is("text/x-toml"):
			return Config, nil
		case m.Is("text/html"), m.Is("text/xml"):
			return Markup, nil
		}
	}
	return Default, nil
}
