// Package flavor supplies the medieval presentation text used by the
// command handlers. It is strictly cosmetic: the court service never
// imports it, and any bank can be replaced by editing the flavor file.
package flavor

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Bank holds the text pools. Zero-valued fields fall back to the built-in
// defaults so a partial flavor file is fine.
type Bank struct {
	Prefixes   []string            `mapstructure:"prefixes"`
	Titles     []string            `mapstructure:"titles"`
	Signatures []string            `mapstructure:"signatures"`
	Openings   []string            `mapstructure:"openings"`
	Closings   []string            `mapstructure:"closings"`
	Messages   map[string][]string `mapstructure:"messages"`
}

// Provider picks random entries from a Bank. Safe for concurrent use.
type Provider struct {
	bank Bank
	mu   sync.Mutex
	rng  *rand.Rand
}

// Load reads the flavor file at path via viper, merging it over the
// defaults. A missing file is not an error; the defaults simply apply.
func Load(path string) (*Provider, error) {
	bank := defaultBank()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return newProvider(bank), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read flavor file %s: %w", path, err)
	}

	var loaded Bank
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, fmt.Errorf("failed to parse flavor file %s: %w", path, err)
	}

	bank = merge(bank, loaded)
	return newProvider(bank), nil
}

// Default returns a provider backed by the built-in banks only.
func Default() *Provider {
	return newProvider(defaultBank())
}

func newProvider(bank Bank) *Provider {
	return &Provider{
		bank: bank,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func merge(base, over Bank) Bank {
	if len(over.Prefixes) > 0 {
		base.Prefixes = over.Prefixes
	}
	if len(over.Titles) > 0 {
		base.Titles = over.Titles
	}
	if len(over.Signatures) > 0 {
		base.Signatures = over.Signatures
	}
	if len(over.Openings) > 0 {
		base.Openings = over.Openings
	}
	if len(over.Closings) > 0 {
		base.Closings = over.Closings
	}
	for key, msgs := range over.Messages {
		if len(msgs) > 0 {
			base.Messages[key] = msgs
		}
	}
	return base
}

// Prefix returns a random exclamation for response embeds ("Hark!").
func (p *Provider) Prefix() string { return p.pick(p.bank.Prefixes) }

// Title returns a random decree headline.
func (p *Provider) Title() string { return p.pick(p.bank.Titles) }

// Signature returns a random decree footer seal.
func (p *Provider) Signature() string { return p.pick(p.bank.Signatures) }

// Opening returns a random decree opening line.
func (p *Provider) Opening() string { return p.pick(p.bank.Openings) }

// Closing returns a random decree closing line.
func (p *Provider) Closing() string { return p.pick(p.bank.Closings) }

// Message formats a random entry from the named command bank. Unknown
// banks yield "" so a handler can fall back to plain text.
func (p *Provider) Message(command string, args ...interface{}) string {
	tmpl := p.pick(p.bank.Messages[command])
	if tmpl == "" {
		return ""
	}
	return fmt.Sprintf(tmpl, args...)
}

func (p *Provider) pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return list[p.rng.Intn(len(list))]
}
