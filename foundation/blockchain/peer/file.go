package peer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the layout of a file listing the peers a node starts with.
//
//	peers:
//	  - http://localhost:9180
//	  - http://localhost:9280
type seedFile struct {
	Peers []string `yaml:"peers"`
}

// LoadFile reads the seed peers listed in a YAML file and returns them
// normalized, in file order, without duplicates. Any malformed address
// fails the whole file.
func LoadFile(path string) ([]Peer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading peers file: %w", err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing peers file: %w", err)
	}

	ps := NewPeerSet()
	for _, address := range sf.Peers {
		pr, err := New(address)
		if err != nil {
			return nil, fmt.Errorf("peers file %s: %w", path, err)
		}
		ps.Add(pr)
	}

	return ps.Copy(""), nil
}
