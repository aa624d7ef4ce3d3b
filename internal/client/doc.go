// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements mailerctl, the operator CLI of the mailer
// service.
//
// Every subcommand except hash-password talks to a running service through
// [adapter.ServerAdapter].
package client
