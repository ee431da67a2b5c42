// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jeranaias/xshell/shell"
)

// demoData is the per-command payload of the demo host. Every kv
// subcommand receives its own copy that points at the same store.
type demoData struct {
	Store *kvStore
}

// kvStore is an in-memory string map shared by the kv commands.
type kvStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func newKVStore() *kvStore {
	return &kvStore{values: make(map[string]string)}
}

func (s *kvStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *kvStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *kvStore) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[key]
	delete(s.values, key)
	return ok
}

// Keys returns the stored keys in sorted order.
func (s *kvStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// sessionInfo is the host-wide value every handler can reach through
// shell.GlobalAs.
type sessionInfo struct {
	Started time.Time
}

func newSessionInfo() *sessionInfo {
	return &sessionInfo{Started: time.Now()}
}

// registerDemoCommands installs the demo command set on app.
func registerDemoCommands(app *shell.App[demoData]) error {
	if err := app.AddCommand(shell.Command[demoData]{
		Name:    "qwert",
		About:   "controls testing features",
		Usage:   "qwert",
		Handler: shell.HandlerFunc[demoData](handleQwert),
	}); err != nil {
		return err
	}

	if err := app.AddCommand(shell.Command[demoData]{
		Name:    "session",
		About:   "shows the current session",
		Usage:   "session",
		Handler: shell.HandlerFunc[demoData](handleSession),
	}); err != nil {
		return err
	}

	if err := app.AddCommand(shell.Command[demoData]{
		Name:    "kv",
		Aliases: []string{"store"},
		About:   "in-memory key/value store",
		Usage:   "kv <set|get|del|list> ...",
	}); err != nil {
		return err
	}

	store := newKVStore()
	kvCommands := []shell.Command[demoData]{
		{
			Name:    "set",
			About:   "stores a value",
			Usage:   "kv set <key> <value...>",
			Handler: shell.DataHandlerFunc[demoData](handleKVSet),
		},
		{
			Name:    "get",
			About:   "prints a stored value",
			Usage:   "kv get <key>",
			Handler: shell.DataHandlerFunc[demoData](handleKVGet),
		},
		{
			Name:    "del",
			Aliases: []string{"rm"},
			About:   "removes a key",
			Usage:   "kv del <key>",
			Handler: shell.DataHandlerFunc[demoData](handleKVDel),
		},
		{
			Name:    "list",
			Aliases: []string{"ls"},
			About:   "lists stored keys",
			Usage:   "kv list",
			Handler: shell.DataHandlerFunc[demoData](handleKVList),
		},
	}
	for _, cmd := range kvCommands {
		if err := app.AddCommandUnderWithData([]string{"kv"}, cmd, demoData{Store: store}); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// HANDLERS
// =============================================================================

func handleQwert(ctx *shell.Context[demoData], args []string) (shell.Outcome, error) {
	if err := shell.ExpectArgs(args, 0, 0); err != nil {
		return shell.Continue, err
	}
	ctx.Println("tested")
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ctx.Logger.Info().Msg("testing features enabled")
	return shell.Continue, nil
}

func handleSession(ctx *shell.Context[demoData], args []string) (shell.Outcome, error) {
	if err := shell.ExpectArgs(args, 0, 0); err != nil {
		return shell.Continue, err
	}
	ctx.Printf("session: %s\n", ctx.SessionID)
	if info, ok := shell.GlobalAs[*sessionInfo](ctx); ok {
		ctx.Printf("started: %s\n", info.Started.Format(time.RFC3339))
		ctx.Printf("uptime:  %s\n", time.Since(info.Started).Round(time.Second))
	}
	return shell.Continue, nil
}

func handleKVSet(ctx *shell.Context[demoData], data *demoData, args []string) (shell.Outcome, error) {
	if err := shell.ExpectArgs(args, 2, -1); err != nil {
		return shell.Continue, err
	}
	value := strings.Join(args[1:], " ")
	data.Store.Set(args[0], value)
	ctx.Logger.Debug().Str("key", args[0]).Msg("kv set")
	return shell.Continue, nil
}

func handleKVGet(ctx *shell.Context[demoData], data *demoData, args []string) (shell.Outcome, error) {
	if err := shell.ExpectArgs(args, 1, 1); err != nil {
		return shell.Continue, err
	}
	v, ok := data.Store.Get(args[0])
	if !ok {
		return shell.Continue, &shell.BadArgumentError{Arg: args[0], Reason: "no such key"}
	}
	ctx.Println(v)
	return shell.Continue, nil
}

func handleKVDel(ctx *shell.Context[demoData], data *demoData, args []string) (shell.Outcome, error) {
	if err := shell.ExpectArgs(args, 1, 1); err != nil {
		return shell.Continue, err
	}
	if !data.Store.Delete(args[0]) {
		return shell.Continue, &shell.BadArgumentError{Arg: args[0], Reason: "no such key"}
	}
	return shell.Continue, nil
}

func handleKVList(ctx *shell.Context[demoData], data *demoData, args []string) (shell.Outcome, error) {
	if err := shell.ExpectArgs(args, 0, 0); err != nil {
		return shell.Continue, err
	}
	for _, k := range data.Store.Keys() {
		v, _ := data.Store.Get(k)
		ctx.Printf("%s=%s\n", k, v)
	}
	return shell.Continue, nil
}
