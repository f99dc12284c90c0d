package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Host           string        `env:"HOST,default=0.0.0.0"`
	Port           int           `env:"PORT,default=9000" validate:"gt=0,lte=65535"`
	DebugPort      int           `env:"DEBUG_PORT,default=9001" validate:"gt=0,lte=65535,nefield=Port"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	RecordTTL      time.Duration `env:"RECORD_TTL,default=10m" validate:"gt=0"`
	CensoredWords  string        `env:"CENSORED_WORDS"`
	CensoredChar   string        `env:"CENSORED_CHARACTER,default=*"`
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// WordList splits the comma-separated censored word list; empty entries are
// dropped so a trailing comma or an unset variable disables nothing extra.
func (c Config) WordList() []string {
	var words []string
	for _, word := range strings.Split(c.CensoredWords, ",") {
		if word = strings.TrimSpace(word); word != "" {
			words = append(words, word)
		}
	}
	return words
}

// MaskRune enforces that the configured mask is a single character.
func (c Config) MaskRune() (rune, error) {
	r := []rune(c.CensoredChar)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSORED_CHARACTER must be a single character, got %q", c.CensoredChar)
	}
	return r[0], nil
}
