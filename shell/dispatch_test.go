// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatchContext(tree *Tree[testData]) *Context[testData] {
	return &Context[testData]{tree: tree, Logger: zerolog.Nop()}
}

func TestDispatch_EmptyTokensIsNoop(t *testing.T) {
	tree := NewTree[testData]()
	var calls [][]string
	require.NoError(t, tree.Register(nil, Command[testData]{Name: "a", Handler: recorder(&calls, Stop)}, nil))

	d := NewDispatcher(tree)
	ctx := newDispatchContext(tree)

	outcome, err := d.Dispatch(ctx, []string{})
	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)
	assert.Empty(t, calls)
	assert.Nil(t, ctx.Command())
}

func TestDispatch_UnknownInvokesNothing(t *testing.T) {
	tree := NewTree[testData]()
	var calls [][]string
	for _, name := range []string{"alpha", "beta", "gamma"} {
		require.NoError(t, tree.Register(nil, Command[testData]{Name: name, Handler: recorder(&calls, Continue)}, nil))
	}
	d := NewDispatcher(tree)
	ctx := newDispatchContext(tree)

	for _, tokens := range [][]string{{"delta"}, {"ALPHA"}, {"alph"}, {"zeta", "alpha"}, {""}} {
		_, err := d.Dispatch(ctx, tokens)
		assert.ErrorIs(t, err, ErrUnknownCommand, "tokens %q", tokens)
	}
	assert.Empty(t, calls)
}

func TestDispatch_PassesArgsAndData(t *testing.T) {
	tree := NewTree[testData]()
	var (
		gotData *testData
		gotArgs []string
		gotNode *Node[testData]
	)
	handler := DataHandlerFunc[testData](func(ctx *Context[testData], data *testData, args []string) (Outcome, error) {
		gotData = data
		gotArgs = args
		gotNode = ctx.Command()
		return Continue, nil
	})
	require.NoError(t, tree.Register(nil, Command[testData]{Name: "kv"}, nil))
	require.NoError(t, tree.Register([]string{"kv"}, Command[testData]{Name: "set", Handler: handler}, &testData{Name: "store"}))

	d := NewDispatcher(tree)
	ctx := newDispatchContext(tree)

	outcome, err := d.Dispatch(ctx, []string{"kv", "set", "a", "1"})
	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)
	require.NotNil(t, gotData)
	assert.Equal(t, "store", gotData.Name)
	assert.Equal(t, []string{"a", "1"}, gotArgs)
	assert.Equal(t, []string{"kv", "set"}, gotNode.Path())
	assert.Same(t, gotNode, ctx.Command())
}

func TestDispatch_DataPersistsAcrossCalls(t *testing.T) {
	tree := NewTree[testData]()
	counter := DataHandlerFunc[testData](func(ctx *Context[testData], data *testData, _ []string) (Outcome, error) {
		data.Count++
		return Continue, nil
	})
	require.NoError(t, tree.Register(nil, Command[testData]{Name: "inc", Handler: counter}, &testData{}))

	d := NewDispatcher(tree)
	ctx := newDispatchContext(tree)
	for i := 0; i < 3; i++ {
		_, err := d.Dispatch(ctx, []string{"inc"})
		require.NoError(t, err)
	}

	node, _ := tree.Lookup([]string{"inc"})
	assert.Equal(t, 3, node.Data().Count)
}

func TestDispatch_ReturnsHandlerResultUnchanged(t *testing.T) {
	tree := NewTree[testData]()
	boom := errors.New("boom")
	require.NoError(t, tree.Register(nil, Command[testData]{Name: "stop", Handler: HandlerFunc[testData](func(*Context[testData], []string) (Outcome, error) {
		return Stop, nil
	})}, nil))
	require.NoError(t, tree.Register(nil, Command[testData]{Name: "fail", Handler: HandlerFunc[testData](func(*Context[testData], []string) (Outcome, error) {
		return Continue, boom
	})}, nil))

	d := NewDispatcher(tree)
	ctx := newDispatchContext(tree)

	outcome, err := d.Dispatch(ctx, []string{"stop"})
	require.NoError(t, err)
	assert.Equal(t, Stop, outcome)

	_, err = d.Dispatch(ctx, []string{"fail"})
	assert.Same(t, boom, err)
}

func TestDispatch_NoHandler(t *testing.T) {
	tree := NewTree[testData]()
	require.NoError(t, tree.Register(nil, Command[testData]{Name: "net"}, nil))

	_, err := NewDispatcher(tree).Dispatch(newDispatchContext(tree), []string{"net"})
	assert.ErrorIs(t, err, ErrNoHandler)
}

func TestDispatch_Sequential(t *testing.T) {
	tree := NewTree[testData]()
	started := make(chan string, 2)
	release := make(chan struct{})

	require.NoError(t, tree.Register(nil, Command[testData]{Name: "slow", Handler: HandlerFunc[testData](func(*Context[testData], []string) (Outcome, error) {
		started <- "slow"
		<-release
		return Continue, nil
	})}, nil))
	require.NoError(t, tree.Register(nil, Command[testData]{Name: "fast", Handler: HandlerFunc[testData](func(*Context[testData], []string) (Outcome, error) {
		started <- "fast"
		return Continue, nil
	})}, nil))

	d := NewDispatcher(tree)
	ctx := newDispatchContext(tree)

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		_, _ = d.Dispatch(ctx, []string{"slow"})
	}()
	require.Equal(t, "slow", <-started)

	fastDone := make(chan struct{})
	go func() {
		defer close(fastDone)
		_, _ = d.Dispatch(ctx, []string{"fast"})
	}()

	select {
	case name := <-started:
		t.Fatalf("%s ran while slow was still running", name)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-slowDone
	assert.Equal(t, "fast", <-started)
	<-fastDone
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "stop", Stop.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
