package keys

import (
	"bufio"
	"crypto/sha1"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btcutil/base58"
	"github.com/gliderlabs/ssh"
)

// Authorized is a set of public keys allowed to open sessions.
type Authorized map[string]bool

// Returns the authorized keys listed in a file.
func LoadAuthorizedKeys(name string) (Authorized, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open authorized keys file: %w", err)
	}
	defer f.Close()

	return ParseAuthorizedKeys(f)
}

// ParseAuthorizedKeys reads keys in authorized_keys format, one per line.
// Blank lines and comments are skipped.
func ParseAuthorizedKeys(r io.Reader) (Authorized, error) {
	keys := make(Authorized)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Bytes()
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		key, _, _, _, err := ssh.ParseAuthorizedKey(line)
		if err != nil {
			return nil, fmt.Errorf("could not parse authorized key: %w", err)
		}

		keys[string(key.Marshal())] = true
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("could not read authorized keys: %w", err)
	}

	return keys, nil
}

// Allows reports whether key is in the set. A nil set allows every key.
func (a Authorized) Allows(key ssh.PublicKey) bool {
	if a == nil {
		return true
	}
	if key == nil {
		return false
	}
	return a[string(key.Marshal())]
}

// SessionID derives a short, stable label for a key to tag logs with.
func SessionID(key ssh.PublicKey) string {
	if key == nil {
		return "anonymous"
	}
	digest := sha1.Sum(key.Marshal())
	return base58.Encode(digest[:8])
}
