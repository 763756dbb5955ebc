package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenAlbum Screen = iota
	screenInfo
)

type albumInput struct {
	Album int
	Index int
}

func TestRunRequiresTransition(t *testing.T) {
	r := New[albumInput, int]()
	r.Register(screenAlbum, func(albumInput) (int, error) { return 0, nil })

	err := r.Run(screenAlbum, albumInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transition function")
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := New[albumInput, int]()
	r.OnTransition(func(Screen, albumInput, int, *Stack[albumInput]) (Screen, albumInput) {
		return ScreenExit, albumInput{}
	})

	err := r.Run(screenInfo, albumInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen 1 not registered")
}

func TestRunWrapsScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := New[albumInput, int]()
	r.Register(screenAlbum, func(albumInput) (int, error) { return 0, boom })
	r.OnTransition(func(Screen, albumInput, int, *Stack[albumInput]) (Screen, albumInput) {
		return ScreenExit, albumInput{}
	})

	err := r.Run(screenAlbum, albumInput{})
	assert.ErrorIs(t, err, boom)
}

func TestBackNavigationRestoresInput(t *testing.T) {
	var seen []albumInput
	r := New[albumInput, int]()
	r.Register(screenAlbum, func(in albumInput) (int, error) {
		seen = append(seen, in)
		return len(seen), nil
	})
	r.OnTransition(func(from Screen, in albumInput, calls int, stack *Stack[albumInput]) (Screen, albumInput) {
		if calls == 1 {
			in.Index = 4
			stack.Push(from, in)
			return screenAlbum, albumInput{Album: 1}
		}
		if entry, ok := stack.Pop(); ok {
			return entry.Screen, entry.Input
		}
		return ScreenExit, in
	})

	require.NoError(t, r.Run(screenAlbum, albumInput{}))
	assert.Equal(t, []albumInput{
		{Album: 0, Index: 0},
		{Album: 1, Index: 0},
		{Album: 0, Index: 4},
	}, seen)
	assert.True(t, r.Stack().IsEmpty())
}

func TestStack(t *testing.T) {
	s := NewStack[string]()
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(screenAlbum, "a")
	s.Push(screenInfo, "b")
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, Entry[string]{Screen: screenInfo, Input: "b"}, top)
	assert.Equal(t, 2, s.Len())

	popped, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", popped.Input)

	s.Clear()
	assert.True(t, s.IsEmpty())
}
