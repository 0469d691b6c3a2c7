package gifheader

import (
	"bufio"
	"os"
)

// ParseFile opens the named file and parses its GIF header.
func ParseFile(name string) (*GIF, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(bufio.NewReader(f))
}
