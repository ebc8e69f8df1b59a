package newsbrief

// DemoURL is the source URL of the built-in demo article.
const DemoURL = "demo://sample-news-article"

// DemoScheme prefixes URLs that request the demo article.
const DemoScheme = "demo://"

// DemoArticle returns a fixed sample article for offline use.
func DemoArticle() *Article {
	return &Article{
		Title:     "Breaking: Scientists Discover New Species in Ocean Depths",
		Content:   "Scientists have discovered a remarkable new species of deep-sea fish in the Mariana Trench, the deepest part of the world's oceans. The newly identified species, temporarily named Pseudoliparis marianensis, was found at depths exceeding 8,000 meters below sea level. The discovery was made during a recent expedition using advanced submersible technology. The fish exhibits unique adaptations to extreme pressure environments, including specialized proteins that allow its cells to function under crushing pressure. Researchers believe this discovery could provide insights into how life adapts to extreme conditions and may have implications for understanding life on other planets. The team plans to conduct further studies to better understand the species' behavior, diet, and ecosystem role.",
		SourceURL: DemoURL,
	}
}
