// Command quizpool builds and serves a chosung quiz pool from a Korean
// dictionary archive.
//
// Subcommands:
//
//	serve       seed the pool, then serve the HTTP API
//	ingest      run one seeding pass
//	search      search the pool and the archive
//	batch       print a random quiz batch
//	add-word    add a word to the pool
//	clear-pool  remove every pooled word
//	migrate     apply the store schema
//	version     print build information
//
// Configuration comes from --config (or CONFIG_PATH) and environment variables.
// Exit codes: 0 = success, 1 = error.
package main

func main() {
	Execute()
}
