package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algodyssey/internal/config"
	"github.com/san-kum/algodyssey/internal/experiment"
	"github.com/san-kum/algodyssey/internal/trace"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func send(m App, msg tea.Msg) (App, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(App), cmd
}

// drain feeds command results back into the model until the run settles.
func drain(m App, cmd tea.Cmd) App {
	for cmd != nil {
		m, cmd = send(m, cmd())
	}
	return m
}

var _ = Describe("App", func() {
	var (
		cfg *config.Config
		app App
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Delay = 0
	})

	JustBeforeEach(func() {
		app = NewApp(experiment.NewRegistry(), cfg, nil)
	})

	It("starts with three idle cards and the first focused", func() {
		Expect(app.cards).To(HaveLen(3))
		Expect(app.focus).To(Equal(0))
		for _, c := range app.cards {
			Expect(c.running()).To(BeFalse())
			Expect(c.cur).To(BeNil())
		}

		view := app.View()
		Expect(view).To(ContainSubstring("Merge Sort"))
		Expect(view).To(ContainSubstring("Kadane's Algorithm"))
		Expect(view).To(ContainSubstring("Binary Search"))
	})

	It("moves focus and wraps around", func() {
		m, _ := send(app, tea.KeyMsg{Type: tea.KeyRight})
		Expect(m.focus).To(Equal(1))
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
		Expect(m.focus).To(Equal(2))
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
		Expect(m.focus).To(Equal(0))
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
		Expect(m.focus).To(Equal(2))
	})

	It("lights the hover cells of the focused card only", func() {
		Expect(app.highlight(app.cards[0], true)).To(Equal([]int{0, 1}))
		Expect(app.highlight(app.cards[1], true)).To(Equal([]int{3, 4, 5, 6}))
		Expect(app.highlight(app.cards[2], true)).To(Equal([]int{3}))
		Expect(app.highlight(app.cards[1], false)).To(BeEmpty())
	})

	It("toggles between dark and light", func() {
		Expect(app.theme.Name).To(Equal("dark"))
		m, _ := send(app, runes("d"))
		Expect(m.theme.Name).To(Equal("light"))
		m, _ = send(m, runes("d"))
		Expect(m.theme.Name).To(Equal("dark"))
	})

	Describe("target input", func() {
		It("sets the binary search target", func() {
			m, _ := send(app, runes("/"))
			Expect(m.editing).To(BeTrue())
			m, _ = send(m, runes("5"))
			m, _ = send(m, runes("0"))
			m, _ = send(m, enter)

			Expect(m.editing).To(BeFalse())
			Expect(m.target).To(Equal(50))
			Expect(m.cards[2].card.Target).To(Equal(50))
			Expect(m.highlight(m.cards[2], true)).To(Equal([]int{5}))
		})

		It("falls back to the default on malformed input", func() {
			m, _ := send(app, runes("/"))
			m, _ = send(m, runes("x"))
			m, _ = send(m, runes("q"))
			Expect(m.editing).To(BeTrue())
			m, _ = send(m, enter)

			Expect(m.target).To(Equal(config.DefaultTarget))
		})

		It("leaves the target alone on escape", func() {
			m, _ := send(app, runes("/"))
			m, _ = send(m, runes("7"))
			m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})

			Expect(m.editing).To(BeFalse())
			Expect(m.target).To(Equal(config.DefaultTarget))
		})
	})

	Describe("running a card", func() {
		It("animates merge sort to the sorted sequence", func() {
			m, cmd := send(app, enter)
			Expect(cmd).NotTo(BeNil())
			Expect(m.cards[0].running()).To(BeTrue())

			m = drain(m, cmd)
			c := m.cards[0]
			Expect(c.done).To(BeTrue())
			Expect(c.running()).To(BeFalse())
			Expect(c.values).To(Equal(trace.Sequence{11, 12, 22, 25, 34, 64, 90}))
			Expect(c.index + 1).To(Equal(len(c.run.Trace)))
			Expect(m.View()).To(ContainSubstring("sorted [11 12 22 25 34 64 90]"))
		})

		It("ignores a second start while the card is running", func() {
			m, cmd := send(app, enter)
			first := m.cards[0].gen

			m, again := send(m, enter)
			Expect(again).To(BeNil())
			Expect(m.status).To(ContainSubstring("already running"))
			Expect(m.cards[0].gen).To(Equal(first))

			m = drain(m, cmd)
			Expect(m.cards[0].done).To(BeTrue())
		})

		It("runs cards independently", func() {
			m, sortCmd := send(app, enter)
			m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
			m, kadaneCmd := send(m, enter)
			Expect(kadaneCmd).NotTo(BeNil())
			Expect(m.cards[0].running()).To(BeTrue())
			Expect(m.cards[1].running()).To(BeTrue())

			m = drain(m, kadaneCmd)
			Expect(m.cards[1].done).To(BeTrue())
			Expect(m.cards[1].sums).To(HaveLen(9))
			Expect(m.View()).To(ContainSubstring("max sum 6 at [3..6]"))
			Expect(m.View()).To(ContainSubstring("running sum"))

			m = drain(m, sortCmd)
			Expect(m.cards[0].done).To(BeTrue())
		})

		It("reports a missing target", func() {
			m, _ := send(app, runes("/"))
			m, _ = send(m, runes("11"))
			m, _ = send(m, enter)
			m.focus = 2

			m, cmd := send(m, enter)
			m = drain(m, cmd)
			Expect(m.cards[2].run.Result.Found).To(BeFalse())
			Expect(m.View()).To(ContainSubstring("11 not found"))
		})

		It("drops steps from a stale run", func() {
			m, cmd := send(app, StepMsg{Card: 0, Gen: 42, Step: trace.Step{Kind: trace.KindMerge}})
			Expect(cmd).To(BeNil())
			Expect(m.cards[0].cur).To(BeNil())

			m, cmd = send(m, DoneMsg{Card: 7})
			Expect(cmd).To(BeNil())
		})
	})

	Context("with a slow delay", func() {
		BeforeEach(func() {
			cfg.Delay = time.Hour
		})

		It("cancels running cards on quit", func() {
			m, _ := send(app, enter)
			Expect(m.cards[0].running()).To(BeTrue())

			m, cmd := send(m, runes("q"))
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
			Eventually(m.cards[0].running).Should(BeFalse())
		})

		It("keeps a running card's player when the config reloads", func() {
			m, _ := send(app, enter)
			busy := m.cards[0].player

			m, _ = send(m, ConfigMsg{Config: &config.Config{Delay: time.Millisecond, Theme: "light", Target: 10}})
			Expect(m.theme.Name).To(Equal("light"))
			Expect(m.cards[0].player).To(BeIdenticalTo(busy))
			Expect(m.cards[1].player.Delay()).To(Equal(time.Millisecond))

			m.shutdown()
			Eventually(busy.Running).Should(BeFalse())
		})
	})

	Context("with configured datasets", func() {
		BeforeEach(func() {
			cfg.Datasets = map[string][]int{
				"mergesort": {3, 1, 2},
				"kadane":    {},
			}
		})

		It("uses them in place of the card defaults", func() {
			Expect(app.cards[0].values).To(Equal(trace.Sequence{3, 1, 2}))
		})

		It("shows the error for an empty kadane sequence", func() {
			m, _ := send(app, tea.KeyMsg{Type: tea.KeyRight})
			m, cmd := send(m, enter)
			Expect(cmd).To(BeNil())
			Expect(m.cards[1].err).To(MatchError(trace.ErrEmptySequence))
			Expect(m.cards[1].running()).To(BeFalse())
		})
	})
})
