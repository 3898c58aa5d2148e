// Package app wires the file manager together and owns its lifecycle.
//
// Startup:
//  1. Initialize the logger from configuration
//  2. Create metrics, tracer and the streaming task runner
//  3. Register the navigation, filesystem and system providers
//  4. Start the session in the user's home directory
//
// Shutdown waits for streaming tasks, writes the metrics textfile when one is
// configured, then flushes the tracer and logger.
//
// Example Usage:
//
//	a, err := app.New(config.LoadOrDefault(), app.Options{
//	    In:   os.Stdin,
//	    Out:  os.Stdout,
//	    Args: os.Args[1:],
//	})
//	defer a.Close()
//	err = a.Run(ctx)
package app
