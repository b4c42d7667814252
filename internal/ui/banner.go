package ui

import (
	"github.com/pterm/pterm"
)

func PrintBanner(version string) {
	logo := `
       _      __                        
  ____(_)____/ /______ ___  ____ _____ 
 / ___/ / ___/ //_/ __ ` + "`" + `__ \/ __ ` + "`" + `/ __ \
/ /  / (__  ) ,< / / / / / / /_/ / /_/ /
/_/  /_/____/_/|_/_/ /_/ /_/\__,_/ .___/ 
                                /_/      
`
	pterm.FgRed.Println(logo)
	pterm.DefaultCenter.Println(pterm.FgGray.Sprint(version + " - Probability/Severity Heatmaps"))
	pterm.Println()
}
