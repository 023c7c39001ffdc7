package days

import "github.com/spf13/pflag"

var _ pflag.Value = (*Name)(nil)

// String implements pflag.Value.
func (n *Name) String() string { return string(*n) }

// Set implements pflag.Value.
func (n *Name) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Type implements pflag.Value.
func (n *Name) Type() string { return "day" }
