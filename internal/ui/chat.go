package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cantara-client/internal/controller"
	"cantara-client/internal/models"
)

func (r *Root) buildChatPage() {
	r.chatLog = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	r.chatLog.SetBorder(true).SetTitle(" Melo · heritage agent ")

	r.chatHistory = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	r.chatHistory.SetBorder(true).SetTitle(" History (Ctrl+D: clear) ")

	r.chatInput = tview.NewInputField().SetLabel("You: ")
	r.chatInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := strings.TrimSpace(r.chatInput.GetText())
		if text == "" {
			return
		}
		r.chatInput.SetText("")
		go r.ctrl.Agent.Send(r.bg(), text)
	})
	r.chatInput.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlD {
			r.openClearConfirm()
			return nil
		}
		return event
	})

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.chatLog, 0, 1, false).
		AddItem(r.chatInput, 1, 0, true)

	r.chatPage = tview.NewFlex().
		AddItem(left, 0, 2, true).
		AddItem(r.chatHistory, 0, 1, false)

	r.chatLog.SetText("[gray]Melo knows the song library. Ask for songs, videos,\nlyrics drafts, or directions around the site.[-]\n")
}

func (r *Root) appendChat(markup string) {
	fmt.Fprint(r.chatLog, markup+"\n")
	r.chatLog.ScrollToEnd()
	r.requestDraw()
}

// ─── controller.ChatView ───

func (r *Root) AppendMessage(role, text string) {
	if role == models.RoleUser {
		r.appendChat("[aqua]You:[-] " + tview.Escape(text))
		return
	}
	r.appendChat("[green]Melo:[-] " + tview.Escape(text))
}

func (r *Root) ShowTyping() {
	r.appendChat("[gray]Melo is typing…[-]")
}

func (r *Root) HideTyping() {
	// Drop the trailing typing line.
	text := r.chatLog.GetText(false)
	if idx := strings.LastIndex(text, "[gray]Melo is typing…[-]\n"); idx >= 0 {
		r.chatLog.SetText(text[:idx] + text[idx+len("[gray]Melo is typing…[-]\n"):])
	}
	r.requestDraw()
}

func (r *Root) ShowConfirmation(card controller.ConfirmationCard) {
	r.pendingConfirm = card
	r.confirmModal.SetText(card.Title + "\n\n" + card.Desc)
	r.pages.AddAndSwitchToPage("agent_confirm", center(56, 11, r.confirmModal), true)
	r.requestDraw()
}

func (r *Root) ShowSongList(songs []models.Song, total int) {
	var b strings.Builder
	fmt.Fprintf(&b, "[green]Melo:[-] 🎵 Songs (%d found):\n", total)
	for _, song := range songs {
		fmt.Fprintf(&b, "   · %s", tview.Escape(song.Title))
		if song.Artist != "" {
			fmt.Fprintf(&b, " [gray]— %s[-]", tview.Escape(song.Artist))
		}
		b.WriteString("\n")
	}
	b.WriteString("   [gray]Find them all in the Song Circle.[-]")
	r.appendChat(b.String())
}

func (r *Root) ShowVideoList(videos []models.Video, total int) {
	var b strings.Builder
	fmt.Fprintf(&b, "[green]Melo:[-] 🎬 Videos (%d found):\n", total)
	for _, video := range videos {
		fmt.Fprintf(&b, "   · %s [gray]%s[-]\n", tview.Escape(video.Title), tview.Escape(video.Summary))
	}
	b.WriteString("   [gray]Watch them on the Learning Plaza.[-]")
	r.appendChat(b.String())
}

func (r *Root) ShowLyrics(card controller.LyricsView) {
	var b strings.Builder
	fmt.Fprintf(&b, "[green]Melo:[-] ✍️ Lyrics on %q:\n\n%s\n",
		card.Theme, tview.Escape(card.Lyrics))
	if card.ComposerPath != "" {
		b.WriteString("\n[yellow]These lyrics are ready in the workshop (F1, then visit " +
			card.ComposerPath + ").[-]")
	}
	r.appendChat(b.String())
}

func (r *Root) RenderHistory(items []models.HistoryItem) {
	if len(items) == 0 {
		r.chatHistory.SetText("[gray]No conversations yet.[-]")
		r.requestDraw()
		return
	}
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "[gray]%s[-]\n[aqua]Q:[-] %s\n[green]A:[-] %s\n\n",
			item.Timestamp, tview.Escape(item.Question), tview.Escape(item.Answer))
	}
	r.chatHistory.SetText(b.String())
	r.requestDraw()
}

func (r *Root) ShowHistoryLoginHint() {
	r.chatHistory.SetText("[yellow]Log in to keep your conversation history.[-]")
	r.requestDraw()
}

func (r *Root) ShowHistoryError(msg string) {
	r.chatHistory.SetText("[red]" + tview.Escape(msg) + "[-]")
	r.requestDraw()
}

func (r *Root) openClearConfirm() {
	r.pages.AddAndSwitchToPage("clear_confirm", center(56, 9, r.clearModal), true)
	r.requestDraw()
}

func (r *Root) CloseClearConfirm() {
	r.pages.RemovePage("clear_confirm")
	r.requestDraw()
}

func (r *Root) ShowClearFailed(msg string) {
	r.flash("[red]" + tview.Escape(msg) + "[-]")
}
