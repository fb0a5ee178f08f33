// Command seqmatch searches sequences for PROSITE-style motifs and
// restriction enzyme sites.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
