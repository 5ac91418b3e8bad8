package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
	"github.com/jcorbin/goforth/internal/runeio"
)

type driverTest struct {
	d   driver
	out strings.Builder
	log strings.Builder
}

func newDriverTest() *driverTest {
	var dt driverTest
	dt.d.log = &logio.Logger{}
	dt.d.log.SetOutput(&dt.log)
	dt.d.out = flushio.NewWriteFlusher(&dt.out)
	return &dt
}

func namedInput(name, input string) io.Reader {
	return runeio.NamedReader(name, strings.NewReader(input))
}

func Test_runScripts(t *testing.T) {
	dt := newDriverTest()
	dt.d.jobs = 2
	require.NoError(t, dt.d.runScripts(context.Background(),
		namedInput("square.fs", ": square dup * ;\n3 square\n4 square\n"),
		namedInput("broken.fs", "1 2\n3 frob 4\n5\n"),
		namedInput("empty.fs", ""),
		namedInput("div.fs", "1\n\n4 0 /"),
	))

	assert.Equal(t, strings.Join([]string{
		"square.fs: 9 16",
		"broken.fs: 1 2 3",
		"empty.fs: ",
		"div.fs: 1",
	}, "\n")+"\n", dt.out.String())
	assert.Equal(t, strings.Join([]string{
		`ERROR: broken.fs:2: unknown word "frob"`,
		`ERROR: div.fs:3: division by zero "/"`,
	}, "\n")+"\n", dt.log.String())
	assert.Equal(t, 1, dt.d.log.ExitCode())
}

func Test_runScripts_single(t *testing.T) {
	dt := newDriverTest()
	dt.d.dump = true
	require.NoError(t, dt.d.runScripts(context.Background(), namedInput("<stdin>", ": one 1 ;\none one +\n")))
	assert.Equal(t, strings.Join([]string{
		"2",
		"# Forth Dump",
		"  stack: 2",
		"# Dictionary",
		"  : one 1 ;",
	}, "\n")+"\n", dt.out.String())
	assert.Equal(t, "", dt.log.String())
	assert.Equal(t, 0, dt.d.log.ExitCode())
}

func Test_runScripts_timeout(t *testing.T) {
	dt := newDriverTest()
	dt.d.timeout = 20 * time.Millisecond
	require.NoError(t, dt.d.runScripts(context.Background(), namedInput("loop.fs", ": loop loop ;\nloop\n")))
	assert.Equal(t, "\n", dt.out.String())
	assert.Equal(t, "ERROR: loop.fs:2: context deadline exceeded\n", dt.log.String())
}

func Test_runScripts_trace(t *testing.T) {
	dt := newDriverTest()
	dt.d.trace = true
	require.NoError(t, dt.d.runScripts(context.Background(), namedInput("t.fs", "1 2 +")))
	assert.Equal(t, "3\n", dt.out.String())
	assert.Contains(t, dt.log.String(), `TRACE: t.fs: > eval "1 2 +"`)
	assert.Contains(t, dt.log.String(), "TRACE: t.fs: exec +")
	assert.Equal(t, 0, dt.d.log.ExitCode())
}

func Test_runScripts_traceName(t *testing.T) {
	dt := newDriverTest()
	dt.d.trace = true
	require.NoError(t, dt.d.runScripts(context.Background(), namedInput("100%d.fs", "1")))
	assert.Contains(t, dt.log.String(), `TRACE: 100%d.fs: > eval "1"`)
	assert.NotContains(t, dt.log.String(), "%!")
}

func Test_runFiles(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "ok.fs")
	require.NoError(t, os.WriteFile(name, []byte("1 2 swap\n"), 0o644))

	dt := newDriverTest()
	require.NoError(t, dt.d.runFiles(context.Background(), name, filepath.Join(dir, "missing.fs")))
	assert.Equal(t, "2 1\n", dt.out.String())
	assert.Contains(t, dt.log.String(), "ERROR: open ")
	assert.Equal(t, 1, dt.d.log.ExitCode())
}

type fakePrompter struct {
	inputs  []interface{}
	history []string
	aborts  bool
	closed  bool
}

func (fp *fakePrompter) Prompt(p string) (string, error) {
	if len(fp.inputs) == 0 {
		return "", io.EOF
	}
	in := fp.inputs[0]
	fp.inputs = fp.inputs[1:]
	if err, ok := in.(error); ok {
		return "", err
	}
	return in.(string), nil
}

func (fp *fakePrompter) AppendHistory(item string) { fp.history = append(fp.history, item) }
func (fp *fakePrompter) SetCtrlCAborts(aborts bool) { fp.aborts = aborts }
func (fp *fakePrompter) Close() error               { fp.closed = true; return nil }

func Test_repl(t *testing.T) {
	dt := newDriverTest()
	fp := &fakePrompter{inputs: []interface{}{
		": square dup * ;",
		"3 square",
		liner.ErrPromptAborted,
		"",
		"nope",
		"drop",
	}}
	require.NoError(t, dt.d.repl(context.Background(), fp))

	assert.True(t, fp.aborts, "expected Ctrl-C to abort lines")
	assert.True(t, fp.closed, "expected prompter to be closed")
	assert.Equal(t, []string{": square dup * ;", "3 square", "nope", "drop"}, fp.history)
	assert.Equal(t, strings.Join([]string{
		"ok",
		"9 ok",
		"9 ok",
		"9 ok",
		"ok",
	}, "\n")+"\n", dt.out.String())
	assert.Equal(t, "ERROR: unknown word \"nope\"\n", dt.log.String())
	assert.Equal(t, 0, dt.d.log.ExitCode(), "expected interactive errors to not set the exit code")
}
