package promptman_test

import (
	"context"
	"fmt"
	"testing/fstest"

	promptman "github.com/MarioMagdy/prompt-manager"
	"github.com/MarioMagdy/prompt-manager/embedstore"
)

func ExampleRender() {
	tpl, err := promptman.ParsePayload("welcome", "Hello {name}, welcome to {app_name}!")
	if err != nil {
		panic(err)
	}
	out, err := promptman.Render(tpl, promptman.Params{
		"name":     "Mario",
		"app_name": "Skill Navigator",
	}, true)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: Hello Mario, welcome to Skill Navigator!
}

func ExampleRender_lenient() {
	tpl, _ := promptman.ParsePayload("greeting", "Hi {name}, {unknown}")
	out, _ := promptman.Render(tpl, promptman.Params{"name": "A"}, false)
	fmt.Println(out)
	// Output: Hi A, {unknown}
}

func ExampleManager_Render() {
	fsys := fstest.MapFS{
		"prompts/welcome.yaml": &fstest.MapFile{
			Data: []byte("template: \"Hello {name}!\"\ndescription: greeting\n"),
		},
	}
	store, err := embedstore.New(fsys, "prompts")
	if err != nil {
		panic(err)
	}
	m := promptman.New(store)
	out, err := m.Render(context.Background(), "welcome", promptman.Params{"name": "Mario"})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: Hello Mario!
}

func ExampleManager_ListPrompts() {
	fsys := fstest.MapFS{
		"prompts/a.yaml": &fstest.MapFile{Data: []byte("template: \"A {x}\"\ndescription: first\n")},
		"prompts/b.yml":  &fstest.MapFile{Data: []byte("\"Plain template\"\n")},
	}
	store, _ := embedstore.New(fsys, "prompts")
	m := promptman.New(store)
	infos, _ := m.ListPrompts(context.Background())
	for _, info := range infos {
		fmt.Println(info.ID)
	}
	// Output:
	// a
	// b
}
