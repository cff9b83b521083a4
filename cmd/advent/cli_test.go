package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"advent/internal/calibration"
	"advent/internal/config"
	"advent/internal/fetch"
	"advent/internal/puzzle"
	"advent/internal/schematic"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const scenarioA = "467..114..\n...*......\n..35..633.\n"

var examples = map[int]string{
	1: "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n",
	2: `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`,
	3: `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`,
	4: `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`,
}

// syncBuffer is a bytes.Buffer safe for concurrent writers and readers.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func setupWorkspace(t *testing.T) string {
	t.Helper()
	t.Setenv("AOC_SESSION", "")
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_DB", "")
	t.Setenv("AOC_YEAR", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	ws := t.TempDir()
	workspace = ws
	configPath = ""
	partFlag = 0
	prettyFlag = false
	require.NoError(t, loadEnvironment())
	logger = zap.NewNop()

	t.Cleanup(func() {
		workspace = ""
		configPath = ""
		partFlag = 0
		prettyFlag = false
		cfg = nil
	})
	return ws
}

func newTestCmd() (*cobra.Command, *syncBuffer) {
	buf := &syncBuffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func writeInput(t *testing.T, day int, text string) string {
	t.Helper()
	path := puzzle.InputPath(cfg.Inputs.Dir, day)
	require.NoError(t, os.MkdirAll(cfg.Inputs.Dir, 0755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestDayCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"day1", "day2", "day3", "day4", "solve", "all", "watch", "history", "fetch", "puzzle", "init"} {
		assert.Contains(t, names, want)
	}
}

func TestDay3FromPath(t *testing.T) {
	ws := setupWorkspace(t)
	path := filepath.Join(ws, "scenario.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenarioA), 0644))

	cmd, out := newTestCmd()
	require.NoError(t, runDay(cmd, 3, []string{path}))
	assert.Equal(t, "502\n16345\n", out.String())

	partFlag = 1
	cmd, out = newTestCmd()
	require.NoError(t, runDay(cmd, 3, []string{path}))
	assert.Equal(t, "502\n", out.String())

	partFlag = 5
	cmd, _ = newTestCmd()
	assert.Error(t, runDay(cmd, 3, []string{path}))
}

func TestDay3Pretty(t *testing.T) {
	ws := setupWorkspace(t)
	path := filepath.Join(ws, "scenario.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenarioA), 0644))

	prettyFlag = true
	cmd, out := newTestCmd()
	require.NoError(t, runDay(cmd, 3, []string{path}))
	assert.Contains(t, out.String(), "Gear Ratios")
	assert.Contains(t, out.String(), "502")
}

func TestDay3Malformed(t *testing.T) {
	ws := setupWorkspace(t)
	path := filepath.Join(ws, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("...\n..\n"), 0644))

	cmd, out := newTestCmd()
	err := runDay(cmd, 3, []string{path})
	require.ErrorIs(t, err, schematic.ErrMalformedGrid)
	assert.Empty(t, out.String())
}

const spelledOnly = "two1nine\neightwothree\nabcone2threexyz\n"

func TestDay1PartWithoutAnswer(t *testing.T) {
	setupWorkspace(t)
	writeInput(t, 1, spelledOnly)

	out, errOut := &syncBuffer{}, &syncBuffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	require.NoError(t, runDay(cmd, 1, nil))
	assert.Equal(t, "-\n125\n", out.String())
	assert.Contains(t, errOut.String(), "day 1 part 1: line 2: line has no digit")

	partFlag = 2
	cmd, out = newTestCmd()
	require.NoError(t, runDay(cmd, 1, nil))
	assert.Equal(t, "125\n", out.String())

	partFlag = 1
	cmd, out = newTestCmd()
	err := runDay(cmd, 1, nil)
	require.ErrorIs(t, err, calibration.ErrNoDigit)
	assert.Empty(t, out.String())

	partFlag = 0
	for day, text := range examples {
		if day != 1 {
			writeInput(t, day, text)
		}
	}
	cmd, out = newTestCmd()
	require.NoError(t, runAll(cmd, nil))
	assert.Contains(t, out.String(), "125")
	assert.Contains(t, out.String(), "part 1: line 2: line has no digit")
}

func TestInputFromInputsDir(t *testing.T) {
	setupWorkspace(t)
	writeInput(t, 3, examples[3])

	cmd, out := newTestCmd()
	require.NoError(t, runDay(cmd, 3, nil))
	assert.Equal(t, "4361\n467835\n", out.String())
}

func TestMissingInputWithoutSession(t *testing.T) {
	setupWorkspace(t)
	cmd, _ := newTestCmd()
	err := runDay(cmd, 2, nil)
	assert.ErrorIs(t, err, fetch.ErrNoSession)
}

func TestSolveCmd(t *testing.T) {
	setupWorkspace(t)
	writeInput(t, 4, examples[4])

	cmd, out := newTestCmd()
	require.NoError(t, solveCmd.RunE(cmd, []string{"4"}))
	assert.Equal(t, "13\n30\n", out.String())

	assert.Error(t, solveCmd.RunE(cmd, []string{"x"}))
	assert.Error(t, solveCmd.RunE(cmd, []string{"26"}))
	assert.Error(t, solveCmd.RunE(cmd, []string{"9"}))
}

func TestHistory(t *testing.T) {
	setupWorkspace(t)
	writeInput(t, 3, examples[3])

	cmd, out := newTestCmd()
	require.NoError(t, runHistory(cmd, nil))
	assert.Contains(t, out.String(), "No runs recorded.")

	cmd, _ = newTestCmd()
	require.NoError(t, runDay(cmd, 3, nil))

	cmd, out = newTestCmd()
	require.NoError(t, runHistory(cmd, []string{"3"}))
	assert.Contains(t, out.String(), "467835")

	cmd, out = newTestCmd()
	require.NoError(t, runHistory(cmd, []string{"1"}))
	assert.Contains(t, out.String(), "No runs recorded.")

	cfg.Store.Enabled = false
	cmd, _ = newTestCmd()
	assert.Error(t, runHistory(cmd, nil))
}

func TestAll(t *testing.T) {
	setupWorkspace(t)
	for day, text := range examples {
		writeInput(t, day, text)
	}

	cmd, out := newTestCmd()
	require.NoError(t, runAll(cmd, nil))
	for _, want := range []string{"Trebuchet?!", "142", "Cube Conundrum", "2286", "Gear Ratios", "4361", "467835", "Scratchcards", "30"} {
		assert.Contains(t, out.String(), want)
	}

	require.NoError(t, os.Remove(filepath.Join(cfg.Inputs.Dir, "04.txt")))
	cmd, out = newTestCmd()
	err := runAll(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 days failed")
	assert.Contains(t, out.String(), "no session token")
}

func newPuzzleServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/2023/day/3/input", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err != nil || c.Value != "tok" {
			http.Error(w, "log in", http.StatusBadRequest)
			return
		}
		w.Write([]byte(scenarioA))
	})
	mux.HandleFunc("/2023/day/3", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><main>
<article class="day-desc"><h2>--- Day 3: Gear Ratios ---</h2><p>Add up the part numbers.</p></article>
<p>Your puzzle answer was <code>4361</code>.</p>
</main></body></html>`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAndAutoDownload(t *testing.T) {
	setupWorkspace(t)
	srv := newPuzzleServer(t)
	cfg.Session.BaseURL = srv.URL
	cfg.Session.Token = "tok"

	cmd, out := newTestCmd()
	require.NoError(t, runFetch(cmd, []string{"3"}))
	assert.Contains(t, out.String(), "Saved day 3 input (3 lines)")

	path := filepath.Join(cfg.Inputs.Dir, "03.txt")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, scenarioA, string(data))

	// A missing input is downloaded and cached on first solve.
	require.NoError(t, os.Remove(path))
	cmd, out = newTestCmd()
	require.NoError(t, runDay(cmd, 3, nil))
	assert.Equal(t, "502\n16345\n", out.String())
	assert.FileExists(t, path)

	cfg.Session.Token = ""
	cmd, _ = newTestCmd()
	assert.ErrorIs(t, runFetch(cmd, []string{"3"}), fetch.ErrNoSession)
}

func TestPuzzle(t *testing.T) {
	setupWorkspace(t)
	srv := newPuzzleServer(t)
	cfg.Session.BaseURL = srv.URL

	cmd, out := newTestCmd()
	require.NoError(t, runPuzzle(cmd, []string{"3"}))
	assert.Contains(t, out.String(), "Gear Ratios")
	assert.Contains(t, out.String(), "4361")

	cmd, _ = newTestCmd()
	assert.Error(t, runPuzzle(cmd, []string{"4"}))
}

func TestInitCmd(t *testing.T) {
	ws := setupWorkspace(t)

	cmd, out := newTestCmd()
	require.NoError(t, runInit(cmd, nil))
	assert.Contains(t, out.String(), "Wrote")
	assert.DirExists(t, filepath.Join(ws, "data", "input"))

	loaded, err := config.Load(config.DefaultPath(ws))
	require.NoError(t, err)
	assert.Equal(t, 2023, loaded.Year)
	assert.Empty(t, loaded.Session.Token)

	cmd, out = newTestCmd()
	require.NoError(t, runInit(cmd, nil))
	assert.Contains(t, out.String(), "already exists")
}

func TestWatch(t *testing.T) {
	ws := setupWorkspace(t)
	path := filepath.Join(ws, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenarioA), 0644))

	oldDebounce := watchDebounce
	watchDebounce = 50 * time.Millisecond
	defer func() { watchDebounce = oldDebounce }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmd, out := newTestCmd()
	cmd.SetContext(ctx)

	done := make(chan error, 1)
	go func() { done <- runWatch(cmd, []string{"3", path}) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "502\n16345\n")
	}, 5*time.Second, 20*time.Millisecond)

	// Rewrite until the watcher has picked the change up; early writes may
	// land before the watch is registered.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("1*3\n"), 0644)
		return strings.Contains(out.String(), "4\n3\n")
	}, 10*time.Second, 300*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestRootExecute(t *testing.T) {
	ws := setupWorkspace(t)
	path := filepath.Join(ws, "scenario.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenarioA), 0644))

	buf := &syncBuffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"day3", path, "--workspace", ws, "--part", "1"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "502\n", buf.String())
}
