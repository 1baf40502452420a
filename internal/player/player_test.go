package player_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algodyssey/internal/player"
	"github.com/san-kum/algodyssey/internal/trace"
)

type recorder struct {
	mu    sync.Mutex
	steps []trace.Step
	at    []time.Time
}

func (r *recorder) OnStep(i int, s trace.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, s)
	r.at = append(r.at, time.Now())
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.steps)
}

var _ = Describe("Player", func() {
	var tr trace.Trace

	BeforeEach(func() {
		tr, _ = trace.BinarySearch(trace.Sequence{2, 3, 4, 10, 40, 50, 60, 70}, 70)
		Expect(tr).To(HaveLen(4))
	})

	It("delivers every step in order", func() {
		p := player.New(0, nil)
		rec := &recorder{}

		Expect(p.Play(context.Background(), tr, rec)).To(Succeed())
		Expect(rec.steps).To(Equal([]trace.Step(tr)))
		Expect(p.Running()).To(BeFalse())
	})

	It("waits the configured delay between steps", func() {
		p := player.New(20*time.Millisecond, nil)
		rec := &recorder{}

		start := time.Now()
		Expect(p.Play(context.Background(), tr, rec)).To(Succeed())
		Expect(time.Since(start)).To(BeNumerically(">=", 60*time.Millisecond))
		Expect(rec.at[1].Sub(rec.at[0])).To(BeNumerically(">=", 20*time.Millisecond))
	})

	It("rejects an overlapping run on the same card", func() {
		p := player.New(30*time.Millisecond, nil)

		steps, err := p.Stream(context.Background(), tr)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Running()).To(BeTrue())

		_, err = p.Stream(context.Background(), tr)
		Expect(err).To(MatchError(player.ErrBusy))
		Expect(p.Play(context.Background(), tr)).To(MatchError(player.ErrBusy))

		n := 0
		for range steps {
			n++
		}
		Expect(n).To(Equal(len(tr)))
		Expect(p.Running()).To(BeFalse())
	})

	It("accepts a new run once the previous one finished", func() {
		p := player.New(0, nil)
		Expect(p.Play(context.Background(), tr)).To(Succeed())
		Expect(p.Play(context.Background(), tr)).To(Succeed())
	})

	It("stops and releases the guard when cancelled", func() {
		p := player.New(time.Hour, nil)
		rec := &recorder{}
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- p.Play(ctx, tr, rec) }()

		Eventually(rec.count).Should(Equal(1))
		cancel()

		Eventually(done).Should(Receive(MatchError(context.Canceled)))
		Expect(rec.count()).To(Equal(1))
		Eventually(p.Running).Should(BeFalse())
	})

	It("keeps cards independent", func() {
		a := player.New(time.Hour, nil)
		b := player.New(0, nil)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		steps, err := a.Stream(ctx, tr)
		Expect(err).NotTo(HaveOccurred())
		Eventually(steps).Should(Receive())

		Expect(b.Play(context.Background(), tr)).To(Succeed())
		Expect(a.Running()).To(BeTrue())

		cancel()
		Eventually(steps).Should(BeClosed())
	})

	It("accepts plain functions as observers", func() {
		p := player.New(0, nil)
		var seen []int
		obs := player.ObserverFunc(func(i int, s trace.Step) { seen = append(seen, s.Index) })

		Expect(p.Play(context.Background(), tr, obs)).To(Succeed())
		Expect(seen).To(Equal([]int{3, 5, 6, 7}))
	})
})
