// Command filemanager is an interactive file manager for the terminal.
//
// It reads one command per line from standard input and runs it relative to
// a tracked current directory, starting in the user's home directory:
//
//	up | cd <dir> | ls
//	add <file> | mkdir <dir> | cat <file> | rm <file>
//	rn <from> <to> | cp <from> <to> | mv <file> <dir>
//	hash <file> | compress <from> <to> | decompress <from> <to>
//	os --EOL | --cpus | --homedir | --username | --architecture
//
// Usage:
//
//	filemanager --username=alice
//	filemanager version
//
// Logging, the hash algorithm and the compression level are configured with
// FM_* environment variables; logs go to stderr.
package main
