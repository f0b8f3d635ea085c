package cmd

import (
	_ "crush-hub/cmd/download"
	_ "crush-hub/cmd/install"
	_ "crush-hub/cmd/root"
	_ "crush-hub/cmd/server"
	_ "crush-hub/cmd/skills"
	_ "crush-hub/cmd/template"
)
