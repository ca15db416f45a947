package prompts

import _ "embed"

// Embedded prompt files

//go:embed qa_system.txt
var qaSystem string

func QASystem() string { return qaSystem }
