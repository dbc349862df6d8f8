package sim

import "fmt"

// notice is a short-lived on-screen message. Sticky notices (defeat) stay
// until the next hard reset.
type notice struct {
	Text      string
	ExpiresAt float64 // world elapsed seconds
	Sticky    bool
}

func (n notice) active(elapsed float64) bool {
	if n.Text == "" {
		return false
	}
	return n.Sticky || elapsed < n.ExpiresAt
}

func (w *World) setNotice(text string) {
	if w.notice.Sticky {
		return
	}
	w.notice = notice{Text: text, ExpiresAt: w.elapsed + noticeDuration}
}

func (w *World) setStickyNotice(text string) {
	w.notice = notice{Text: text, Sticky: true}
}

func (w *World) expireNotice() {
	if w.notice.Text != "" && !w.notice.active(w.elapsed) {
		w.notice = notice{}
	}
}

// HintText is the single string surfaced to the HUD: an event notice
// while one is live, otherwise the proximity prompt.
func (w *World) HintText() string {
	if w.notice.active(w.elapsed) {
		return w.notice.Text
	}
	return w.prompt
}

// recomputePrompt refreshes the proximity prompt from the interaction
// resolver. Prompts are suppressed while dialogue or an overlay is open.
func (w *World) recomputePrompt() {
	w.nearest = Interactable{}
	w.prompt = ""
	if w.blocked() {
		return
	}
	target := w.nearestInteractable()
	w.nearest = target
	switch target.Kind {
	case InteractShop:
		w.prompt = fmt.Sprintf("Press E to browse the %s", target.Name)
	case InteractNPC:
		w.prompt = fmt.Sprintf("Press E to talk to %s", target.Name)
	}
}

func noticeSold(price int) string {
	return fmt.Sprintf("Sold for %d coins.", price)
}

func noticeSoldAll(count, total int) string {
	return fmt.Sprintf("Sold %d gifts for %d coins.", count, total)
}
