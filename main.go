// Command sales summarises e-commerce sales exports. See cmd for the CLI
// surface; the pipeline lives under internal/.
package main

import (
	"github.com/ginjaninja78/sales-report/cmd"
)

func main() {
	cmd.Execute()
}
