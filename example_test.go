package richdesc_test

import (
	"fmt"

	richdesc "github.com/mlanted/go-richdesc"
)

// Example demonstrates rendering a markdown catalog description.
func Example() {
	html := richdesc.Render("# Shiny Tools\n\nAdds **shiny** copper tools.")
	fmt.Println(html)
	// Output:
	// <h1>Shiny Tools</h1>
	// <p>Adds <strong>shiny</strong> copper tools.</p>
}

// Example_injection shows an injection attempt being neutralized.
func Example_injection() {
	html := richdesc.Render(`<img src=x onerror=alert(1)>`)
	fmt.Println(html)
	// Output: <img src="x"/>
}

// Example_fallback shows the placeholder for empty catalog entries.
func Example_fallback() {
	html := richdesc.Render("")
	fmt.Println(html)
	// Output: <p>No description available.</p>
}

// Example_service demonstrates a customized Service.
func Example_service() {
	svc := richdesc.New(
		richdesc.WithDialect(richdesc.DialectExtended),
		richdesc.WithFallback("This mod has no description yet."),
	)
	fmt.Println(svc.Render(""))
	// Output: <p>This mod has no description yet.</p>
}
