package puzzle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hivebound/beebot/internal/domain/entity"
)

// document is the JSON shape served by the puzzle endpoint. Date may be
// absent, in which case the puzzle is stamped with today's date.
type document struct {
	Date     string   `json:"date"`
	Center   string   `json:"center"`
	Letters  string   `json:"letters"`
	WordList []string `json:"wordlist"`
	Pangrams []string `json:"pangrams"`
}

// Puzzle is one day's fetched puzzle with its rendered message content and
// normalized answer set.
type Puzzle struct {
	ID       string
	Date     string
	Center   string
	Letters  []string
	Answers  map[string]bool
	Pangrams map[string]bool
	Content  string
}

// Client fetches the puzzle of the day over HTTP and caches fetched puzzles
// by date for the lifetime of the process.
type Client struct {
	url        string
	httpClient *http.Client

	mu     sync.Mutex
	byID   map[string]*Puzzle
	byDate map[string]*Puzzle
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		byID:       make(map[string]*Puzzle),
		byDate:     make(map[string]*Puzzle),
	}
}

// ExistsForToday reports whether the endpoint currently serves a puzzle dated
// today; a cached hit short-circuits the request.
func (c *Client) ExistsForToday() bool {
	stamp := entity.DateStamp(time.Now())

	c.mu.Lock()
	_, cached := c.byDate[stamp]
	c.mu.Unlock()
	if cached {
		return true
	}

	doc, err := c.fetch(context.Background())
	if err != nil {
		return false
	}
	return docDate(doc) == stamp
}

// FetchAndRenderToday downloads today's puzzle, renders its message content
// and returns its id. Fails when the endpoint still serves yesterday's
// puzzle.
func (c *Client) FetchAndRenderToday(ctx context.Context) (string, error) {
	stamp := entity.DateStamp(time.Now())

	c.mu.Lock()
	if p, ok := c.byDate[stamp]; ok {
		c.mu.Unlock()
		return p.ID, nil
	}
	c.mu.Unlock()

	doc, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}
	if docDate(doc) != stamp {
		return "", fmt.Errorf("puzzle endpoint still serves %s, want %s", docDate(doc), stamp)
	}

	p, err := build(doc, stamp)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.byID[p.ID] = p
	c.byDate[p.Date] = p
	c.mu.Unlock()

	return p.ID, nil
}

// Content returns the rendered message content for a fetched puzzle.
func (c *Client) Content(puzzleID string) (string, error) {
	p, ok := c.Get(puzzleID)
	if !ok {
		return "", fmt.Errorf("unknown puzzle %s", puzzleID)
	}
	return p.Content, nil
}

// Get returns a fetched puzzle by id.
func (c *Client) Get(puzzleID string) (*Puzzle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.byID[puzzleID]
	return p, ok
}

// GetByDate returns a fetched puzzle by its yyyy-mm-dd stamp.
func (c *Client) GetByDate(stamp string) (*Puzzle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.byDate[stamp]
	return p, ok
}

func (c *Client) fetch(ctx context.Context) (*document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build puzzle request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch puzzle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("puzzle endpoint returned status %d", resp.StatusCode)
	}

	doc := &document{}
	if err := json.NewDecoder(resp.Body).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode puzzle: %w", err)
	}

	return doc, nil
}

func docDate(doc *document) string {
	if doc.Date != "" {
		return doc.Date
	}
	return entity.DateStamp(time.Now())
}

func build(doc *document, stamp string) (*Puzzle, error) {
	center := strings.ToLower(strings.TrimSpace(doc.Center))
	if len(center) != 1 {
		return nil, fmt.Errorf("puzzle for %s has invalid center letter %q", stamp, doc.Center)
	}
	if len(doc.WordList) == 0 {
		return nil, fmt.Errorf("puzzle for %s has no answers", stamp)
	}

	var outer []string
	for _, r := range strings.ToLower(doc.Letters) {
		letter := string(r)
		if letter != center {
			outer = append(outer, letter)
		}
	}
	sort.Strings(outer)

	answers := make(map[string]bool, len(doc.WordList))
	for _, w := range doc.WordList {
		answers[strings.ToLower(strings.TrimSpace(w))] = true
	}
	pangrams := make(map[string]bool, len(doc.Pangrams))
	for _, w := range doc.Pangrams {
		pangrams[strings.ToLower(strings.TrimSpace(w))] = true
	}

	p := &Puzzle{
		ID:       "bee-" + stamp,
		Date:     stamp,
		Center:   center,
		Letters:  outer,
		Answers:  answers,
		Pangrams: pangrams,
	}
	p.Content = Render(p, 0, 0)
	return p, nil
}

// Render builds the puzzle post content. foundWords and score fold the
// session's progress into the post; both zero renders the fresh puzzle.
func Render(p *Puzzle, foundWords, score int) string {
	day, err := time.ParseInLocation("2006-01-02", p.Date, entity.Location())
	heading := p.Date
	if err == nil {
		heading = day.Format("Monday, January 2")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🐝 **Spelling Bee — %s**\n\n", heading)
	fmt.Fprintf(&b, "Center letter: **%s**\n", strings.ToUpper(p.Center))
	fmt.Fprintf(&b, "Outer letters: %s\n\n", strings.ToUpper(strings.Join(p.Letters, " ")))
	b.WriteString("Make words of 4+ letters that use the center letter. Reply in this channel with your guesses!")
	if foundWords > 0 {
		fmt.Fprintf(&b, "\n\nWords found: %d · Score: %d", foundWords, score)
	}
	return b.String()
}
