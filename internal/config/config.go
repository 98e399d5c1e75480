package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Deck   DeckConfig   `mapstructure:"deck"   validate:"required"`
}

// ServerConfig contains settings for the read-only preview server and
// for logging across all deckctl commands.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DeckConfig contains the configurable parts of content interpretation.
// The defaults match the shipped format; changing them only makes sense
// for decks authored against a different convention.
type DeckConfig struct {
	// QASeparator is the line that splits a question/answer item.
	QASeparator string `mapstructure:"qa_separator" validate:"required"`

	// ClozePlaceholder stands in for hidden cloze text without a hint.
	ClozePlaceholder string `mapstructure:"cloze_placeholder" validate:"required"`
}
