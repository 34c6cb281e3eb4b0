package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/rune-augmenter/internal/llm"
	"github.com/jonathan/rune-augmenter/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedOperator struct {
	answers []bool
}

func (o *scriptedOperator) Confirm(_ string, _ bool) (bool, error) {
	if len(o.answers) == 0 {
		return false, errors.New("no scripted answer left")
	}
	answer := o.answers[0]
	o.answers = o.answers[1:]
	return answer, nil
}

type fakeClient struct {
	completions []*llm.Completion
	requests    [][]llm.Message
}

func (c *fakeClient) Complete(_ context.Context, messages []llm.Message) (*llm.Completion, error) {
	c.requests = append(c.requests, messages)
	if len(c.completions) == 0 {
		return nil, errors.New("no scripted completion left")
	}
	completion := c.completions[0]
	c.completions = c.completions[1:]
	return completion, nil
}

func (c *fakeClient) Model() string { return "fake" }
func (c *fakeClient) Close() error  { return nil }

type recordingClipboard struct {
	writes []string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.writes = append(c.writes, text)
	return nil
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPipeline_SkipsCompleteRecords(t *testing.T) {
	path := writeDataset(t, `[
		{"rune_name": "RUNA FEHU", "description": "d", "type": "normal",
		 "alternatives": ["a"], "summaries": ["s"]}
	]`)

	client := &fakeClient{}
	operator := &scriptedOperator{}
	var out bytes.Buffer

	err := RunPipeline(context.Background(), RunOptions{
		TargetPath: path,
		Client:     client,
		Operator:   operator,
		Clipboard:  &recordingClipboard{},
		Out:        &out,
	})
	require.NoError(t, err)

	assert.Empty(t, client.requests, "complete records must not reach the completion client")
	assert.Contains(t, out.String(), "1 loaded")
	assert.Contains(t, out.String(), "tokens: 0")
}

func TestRunPipeline_TwoStagesAndTokenAccounting(t *testing.T) {
	path := writeDataset(t, `[
		{"rune_name": "RUNA FOO", "description": "d", "type": "normal"}
	]`)

	client := &fakeClient{
		completions: []*llm.Completion{
			{Content: "1. alt uno\n2. alt dos", Usage: llm.Usage{TotalTokens: 10}},
			{Content: "resumen uno", Usage: llm.Usage{TotalTokens: 15}},
		},
	}
	// stage 1: ask yes, copy no
	// stage 2: alt1 ask yes + add yes, alt2 ask no, final copy no
	operator := &scriptedOperator{answers: []bool{true, false, true, true, false, false}}
	var out bytes.Buffer

	err := RunPipeline(context.Background(), RunOptions{
		TargetPath: path,
		Client:     client,
		Operator:   operator,
		Clipboard:  &recordingClipboard{},
		Out:        &out,
	})
	require.NoError(t, err)

	// The alternatives prompt uses the display name with the prefix stripped
	// and no inversion qualifier for kind "normal"
	require.NotEmpty(t, client.requests)
	assert.Contains(t, client.requests[0][1].Content, "la runa FOO: d")
	assert.NotContains(t, client.requests[0][1].Content, "invertida")

	// 10 tokens from stage 1 plus 15 from stage 2
	assert.Contains(t, out.String(), "tokens: 25")
}

func TestRunPipeline_SaveWritesBack(t *testing.T) {
	path := writeDataset(t, `[
		{"rune_name": "RUNA FOO", "description": "d", "type": "normal"}
	]`)

	client := &fakeClient{
		completions: []*llm.Completion{
			{Content: "1. alt uno", Usage: llm.Usage{TotalTokens: 10}},
			{Content: "resumen uno", Usage: llm.Usage{TotalTokens: 15}},
		},
	}
	operator := &scriptedOperator{answers: []bool{true, false, true, true, false}}
	var out bytes.Buffer

	err := RunPipeline(context.Background(), RunOptions{
		TargetPath: path,
		Save:       true,
		Client:     client,
		Operator:   operator,
		Clipboard:  &recordingClipboard{},
		Out:        &out,
	})
	require.NoError(t, err)

	records, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"alt uno"}, records[0].Alternatives)
	assert.Equal(t, []string{"resumen uno"}, records[0].Summaries)
	assert.True(t, records[0].Complete())
}

func TestRunPipeline_AbandonedStageLeavesRecordIncomplete(t *testing.T) {
	path := writeDataset(t, `[
		{"rune_name": "RUNA FOO", "description": "d", "type": "normal"}
	]`)

	client := &fakeClient{}
	// decline the stage-1 ask; stage 2 never runs without alternatives
	operator := &scriptedOperator{answers: []bool{false}}
	var out bytes.Buffer

	err := RunPipeline(context.Background(), RunOptions{
		TargetPath: path,
		Save:       true,
		Client:     client,
		Operator:   operator,
		Clipboard:  &recordingClipboard{},
		Out:        &out,
	})
	require.NoError(t, err)

	assert.Empty(t, client.requests)

	records, err := store.Load(path)
	require.NoError(t, err)
	assert.False(t, records[0].Complete(), "abandoned records are retried on a future run")
}

func TestRunPipeline_InvalidDataset(t *testing.T) {
	path := writeDataset(t, `[{"rune_name": "RUNA FOO", "type": "normal"}]`)

	err := RunPipeline(context.Background(), RunOptions{
		TargetPath: path,
		Client:     &fakeClient{},
		Operator:   &scriptedOperator{},
		Clipboard:  &recordingClipboard{},
		Out:        &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRunPipeline_MissingDataset(t *testing.T) {
	err := RunPipeline(context.Background(), RunOptions{
		TargetPath: filepath.Join(t.TempDir(), "nope.json"),
		Client:     &fakeClient{},
		Operator:   &scriptedOperator{},
		Clipboard:  &recordingClipboard{},
		Out:        &bytes.Buffer{},
	})
	require.Error(t, err)
}
