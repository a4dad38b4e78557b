package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
   ____      ____             _____ __
  / ___/___ / / /__________  / _/ / /__
 / /__/ _ \/ / '_/ __/ __/ / / _/ / -_)
 \___/\___/_/_/\_\/_/  \__/_/_/ \__/
`

var version = "v0.1.0"

// showBanner prints the tool banner.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tcolprofile\n\n")
}
