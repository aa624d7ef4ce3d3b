package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing required argument")
	ErrNotLoggedIn     = errors.New("no token: run `mailerctl login` and pass the token with -token or ADAPTER_TOKEN")
)
