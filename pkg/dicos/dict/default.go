package dict

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed default.xml
var defaultXML []byte

var defaultDict = sync.OnceValue(func() *Dictionary {
	return MustLoad(bytes.NewReader(defaultXML))
})

// Default returns the built-in standard dictionary, loaded once per process.
// It must not be extended with Register or Load; build a dictionary with New
// and Merge(Default()) for that.
func Default() *Dictionary {
	return defaultDict()
}
