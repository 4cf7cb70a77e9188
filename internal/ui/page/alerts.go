package page

import "sync"

type Banner struct {
	ID      int
	Message string
	Level   string
}

// AlertContainer holds the live notification banners.
type AlertContainer struct {
	ID string

	mu      sync.Mutex
	nextID  int
	banners []Banner
}

func (c *AlertContainer) Append(message, level string) Banner {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	b := Banner{ID: c.nextID, Message: message, Level: level}
	c.banners = append(c.banners, b)
	return b
}

// Dismiss removes the banner with id and reports whether it was present.
func (c *AlertContainer) Dismiss(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, b := range c.banners {
		if b.ID == id {
			c.banners = append(c.banners[:i], c.banners[i+1:]...)
			return true
		}
	}
	return false
}

func (c *AlertContainer) DismissAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banners = nil
}

func (c *AlertContainer) Banners() []Banner {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Banner(nil), c.banners...)
}
