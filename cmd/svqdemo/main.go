// Command svqdemo seals and recovers a secret behind a set of security
// questions, as a thin driver over the svq package.
package main

import "github.com/jpfluger/svaroq/cmd/svqdemo/cmd"

func main() {
	cmd.Execute()
}
