package entities

// Page is a static descriptor for a known site page, used only by the unified
// search. Keywords are the editorial search hints for the page.
type Page struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Keywords    []string `json:"keywords"`
	Content     string   `json:"content"`
}
