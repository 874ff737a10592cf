package actionflow_test

import (
	"fmt"
	"log"
	"os"

	"github.com/aretw0/actionflow"
	"github.com/aretw0/actionflow/pkg/document"
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/aretw0/actionflow/pkg/dsl"
	"github.com/aretw0/actionflow/pkg/nodes"
	"github.com/aretw0/actionflow/pkg/registry"
)

// ExampleEngine_RunDocument runs the reference two-step pipeline from an XML document.
func ExampleEngine_RunDocument() {
	reg := registry.New()
	if err := nodes.Register(reg, nodes.WithOutput(os.Stdout)); err != nil {
		log.Fatal(err)
	}

	doc := []byte(`<pipeline>
  <action class="GetInputNode" outputId="greeting" name="get"/>
  <action class="PrintInputNode" inputId="greeting" name="print"/>
</pipeline>`)

	eng := actionflow.New(actionflow.WithRegistry(reg))
	res, err := eng.RunDocument(doc, document.FormatXML,
		func(msg string) { fmt.Println("error:", msg) },
		func(msg string) { fmt.Println(msg) },
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("ok:", res.OK())

	// Output:
	// action get executed
	// hello
	// action print executed
	// ok: true
}

// ExampleEngine_Execute shows a custom node and a failing step.
func ExampleEngine_Execute() {
	reg := registry.New()
	reg.MustRegister("Double", func() domain.Node {
		return domain.NodeFunc(func(c *domain.Context, in, out string) error {
			n, ok := domain.Get[int](c, in)
			if !ok {
				return fmt.Errorf("input %q is not an int", in)
			}
			c.Set(out, n*2)
			return nil
		})
	})

	c := domain.NewContext()
	c.Set("n", 21)
	c.Set("s", "21")

	p := domain.Pipeline{Actions: []domain.Action{
		{Class: "Double", InputID: "n", OutputID: "n2", Name: "double"},
		{Class: "Double", InputID: "s", OutputID: "s2", Name: "double-string"},
	}}

	eng := actionflow.New(actionflow.WithRegistry(reg))
	res := eng.ExecuteWithInput(p, c,
		func(msg string) { fmt.Println("error:", msg) },
		func(msg string) { fmt.Println(msg) },
	)

	n2, _ := domain.Get[int](c, "n2")
	fmt.Println(n2, res.Completed)

	// Output:
	// action double executed
	// error: input "s" is not an int
	// 42 1
}

// ExampleEngine_Execute_dsl builds the pipeline in Go instead of loading a document.
func ExampleEngine_Execute_dsl() {
	reg := registry.New()
	if err := nodes.Register(reg, nodes.WithOutput(os.Stdout)); err != nil {
		log.Fatal(err)
	}

	b := dsl.New("shout")
	b.Add("get").Class(nodes.ClassGetInput).Output("greeting").
		Then("upper").Class(nodes.ClassUpper).Input("greeting").Output("loud").
		Then("print").Class(nodes.ClassPrintInput).Input("loud")

	res := actionflow.New(actionflow.WithRegistry(reg)).Execute(b.MustBuild(), nil, nil)
	fmt.Println("completed:", res.Completed)

	// Output:
	// HELLO
	// completed: 3
}
