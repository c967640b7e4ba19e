package lex

import "github.com/sirupsen/logrus"

type options struct {
	log      logrus.Ext1FieldLogger
	capacity int
}

// An Option is a configuration option for a new Lexer or for Lex.
//
type Option func(*options)

// Logger sets a logger for the lexer. Emitted tokens are logged at trace
// level and errors at debug level. By default, the lexer does not log.
//
func Logger(l logrus.Ext1FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Capacity sets the initial capacity of the token slice returned by Lex.
// It has no effect on a Lexer.
//
func Capacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{capacity: 64}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
