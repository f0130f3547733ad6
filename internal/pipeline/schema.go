package pipeline

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all top-level blocks of a pipeline file.
type fileRoot struct {
	Scalars []*scalarBlock `hcl:"scalar,block"`
	Tasks   []*taskBlock   `hcl:"task,block"`
	Outputs []*outputBlock `hcl:"output,block"`
}

type scalarBlock struct {
	Name     string         `hcl:"name,label"`
	Value    hcl.Expression `hcl:"value"`
	DefRange hcl.Range      `hcl:",def_range"`
}

type taskBlock struct {
	Name     string         `hcl:"name,label"`
	Function string         `hcl:"function"`
	Args     hcl.Expression `hcl:"args,optional"`
	Literals hcl.Expression `hcl:"literals,optional"`
	DefRange hcl.Range      `hcl:",def_range"`
}

type outputBlock struct {
	Columns  []string  `hcl:"columns"`
	DefRange hcl.Range `hcl:",def_range"`
}
