package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) call(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.call("login", nil)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error    { return f.call("show", args) }
func (f *fakeExec) Publish(ctx context.Context, args []string) error { return f.call("publish", args) }
func (f *fakeExec) Upload(ctx context.Context, args []string) error  { return f.call("upload", args) }
func (f *fakeExec) Preview(ctx context.Context, args []string) error { return f.call("preview", args) }
func (f *fakeExec) ClearPreview(ctx context.Context) error           { return f.call("clear-preview", nil) }
func (f *fakeExec) Render(ctx context.Context, args []string) error  { return f.call("render", args) }
func (f *fakeExec) Watch(ctx context.Context) error                  { return f.call("watch", nil) }
func (f *fakeExec) Hash(ctx context.Context) error                   { return f.call("hash", nil) }

func TestRunREPL_CommandDispatch(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"show site.title",
		"publish content.json",
		"upload logo.png",
		"preview draft.json",
		"clear-preview",
		"hash",
		"foobar",
		"",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"login", "show", "publish", "upload", "preview", "clear-preview", "hash"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("call %d: got %q want %q (all: %v)", i, c, want[i], exec.calls)
		}
	}

	if len(exec.args[1]) != 1 || exec.args[1][0] != "site.title" {
		t.Fatalf("show args: %v", exec.args[1])
	}
	if len(exec.args[2]) != 1 || exec.args[2][0] != "content.json" {
		t.Fatalf("publish args: %v", exec.args[2])
	}
}

func TestRunREPL_QuitAndEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("quit\nshow\n")))
	if len(exec.calls) != 0 {
		t.Fatalf("commands after quit were dispatched: %v", exec.calls)
	}

	exec = &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("")))
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls on EOF: %v", exec.calls)
	}
}
