/*
Package tasks runs streaming file operations in the background.

A command that moves bytes (cat, cp, mv, compress, decompress, hash) is
launched as a Task and the REPL returns to the prompt immediately. When the
task finishes, the Runner's reporter prints its completion line; a task that
fails reports its error instead, and the error never escapes the goroutine.

	runner := tasks.NewRunner(tasks.WithReporter(func(t *tasks.Task) {
		result, err := t.Result()
		report(result, err)
	}))
	task := runner.Launch(ctx, "cp", func(ctx context.Context) (tasks.Result, error) {
		n, err := copyFile(from, to)
		return tasks.Result{Message: "File copied successfully", Bytes: n}, err
	})

Runner.Wait blocks until every launched task has reported, which lets the
shell drain in-flight work before it says goodbye.
*/
package tasks
