package stats

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
)

// ======================================================
// PERIOD AGGREGATES
// ======================================================

type Bucket struct {
	Period string  `json:"period"`
	Cuts   int     `json:"cuts"`
	Income float64 `json:"income"`
}

type Aggregate struct {
	Period  Period    `json:"period"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Buckets []Bucket  `json:"buckets"`
	Count   int       `json:"count"`
	Total   float64   `json:"total"`
}

type bucketAcc struct {
	cuts  int
	cents int64
}

// GroupByPeriod buckets rows by their period key, ascending.
func GroupByPeriod(
	rows []cut.StatRow,
	p Period,
	loc *time.Location,
) []Bucket {
	acc := make(map[string]*bucketAcc)
	for _, r := range rows {
		k := p.Key(r.CreatedAt, loc)
		b, ok := acc[k]
		if !ok {
			b = &bucketAcc{}
			acc[k] = b
		}
		b.cuts++
		b.cents += toCents(r.Amount)
	}

	keys := make([]string, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, Bucket{
			Period: k,
			Cuts:   acc[k].cuts,
			Income: fromCents(acc[k].cents),
		})
	}
	return out
}

// BuildAggregate only counts rows inside w.
func BuildAggregate(
	rows []cut.StatRow,
	p Period,
	w Window,
	loc *time.Location,
) Aggregate {
	in := make([]cut.StatRow, 0, len(rows))
	var cents int64
	for _, r := range rows {
		if !w.Contains(r.CreatedAt) {
			continue
		}
		in = append(in, r)
		cents += toCents(r.Amount)
	}

	return Aggregate{
		Period:  p,
		From:    w.From,
		To:      w.To,
		Buckets: GroupByPeriod(in, p, loc),
		Count:   len(in),
		Total:   fromCents(cents),
	}
}

// ======================================================
// SUMMARY
// ======================================================

type Summary struct {
	TotalIncome         float64 `json:"totalIncome"`
	TotalCuts           int     `json:"totalCuts"`
	AvgTicket           float64 `json:"avgTicket"`
	MostFrequentPayment *string `json:"mostFrequentPayment"`
}

func Summarize(rows []cut.StatRow) Summary {
	var cents int64
	for _, r := range rows {
		cents += toCents(r.Amount)
	}

	s := Summary{
		TotalIncome: fromCents(cents),
		TotalCuts:   len(rows),
		AvgTicket:   AverageTicket(cents, len(rows)),
	}
	if m, ok := ModalPayment(rows); ok {
		v := string(m)
		s.MostFrequentPayment = &v
	}
	return s
}

// ModalPayment picks the most used method. Ties go to the method listed
// first in cut.PaymentMethods.
func ModalPayment(rows []cut.StatRow) (cut.PaymentMethod, bool) {
	if len(rows) == 0 {
		return "", false
	}

	counts := make(map[cut.PaymentMethod]int)
	for _, r := range rows {
		counts[cut.PaymentMethod(r.PaymentMethod)]++
	}

	var (
		best  cut.PaymentMethod
		found bool
	)
	for _, m := range cut.PaymentMethods() {
		if counts[m] == 0 {
			continue
		}
		if !found || counts[m] > counts[best] {
			best, found = m, true
		}
	}
	return best, found
}

// ======================================================
// PER BARBER
// ======================================================

type BarberIncome struct {
	BarberID    uint    `json:"barberId"`
	BarberName  string  `json:"barberName"`
	TotalIncome float64 `json:"totalIncome"`
	Cuts        int     `json:"cuts"`
}

// BarberIDs lists distinct barbers in order of first appearance.
func BarberIDs(rows []cut.StatRow) []uint {
	seen := make(map[uint]struct{})
	var ids []uint
	for _, r := range rows {
		if _, ok := seen[r.BarberID]; ok {
			continue
		}
		seen[r.BarberID] = struct{}{}
		ids = append(ids, r.BarberID)
	}
	return ids
}

// GroupByBarber keeps barbers missing from names with an empty name.
func GroupByBarber(
	rows []cut.StatRow,
	names map[uint]string,
) []BarberIncome {
	acc := make(map[uint]*bucketAcc)
	for _, r := range rows {
		b, ok := acc[r.BarberID]
		if !ok {
			b = &bucketAcc{}
			acc[r.BarberID] = b
		}
		b.cuts++
		b.cents += toCents(r.Amount)
	}

	ids := BarberIDs(rows)
	out := make([]BarberIncome, 0, len(ids))
	for _, id := range ids {
		out = append(out, BarberIncome{
			BarberID:    id,
			BarberName:  names[id],
			TotalIncome: fromCents(acc[id].cents),
			Cuts:        acc[id].cuts,
		})
	}
	return out
}

// ======================================================
// FREQUENT CLIENTS
// ======================================================

const (
	DefaultMinCuts       = 2
	DefaultFrequentLimit = 10
	MaxFrequentLimit     = 100
)

type FrequentClient struct {
	ClientID   *uint     `json:"clientId,omitempty"`
	Name       string    `json:"name"`
	LastName   string    `json:"lastName"`
	Cuts       int       `json:"cuts"`
	TotalSpent float64   `json:"totalSpent"`
	LastVisit  time.Time `json:"lastVisit"`
}

type FrequentOptions struct {
	MinCuts int
	Limit   int
}

func (o FrequentOptions) Normalize() FrequentOptions {
	if o.MinCuts <= 0 {
		o.MinCuts = DefaultMinCuts
	}
	if o.Limit <= 0 {
		o.Limit = DefaultFrequentLimit
	}
	if o.Limit > MaxFrequentLimit {
		o.Limit = MaxFrequentLimit
	}
	return o
}

type clientAcc struct {
	FrequentClient
	cents int64
}

func clientKey(r cut.StatRow) string {
	if r.ClientID != nil {
		return "id:" + strconv.FormatUint(uint64(*r.ClientID), 10)
	}
	return "name:" + normalizeName(r.ClientName) + "|" + normalizeName(r.ClientLastName)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// FrequentClients groups linked cuts by client id and unlinked cuts by
// normalised full name. Sorted by cuts desc, spent desc, then name.
func FrequentClients(
	rows []cut.StatRow,
	opts FrequentOptions,
) []FrequentClient {
	opts = opts.Normalize()

	acc := make(map[string]*clientAcc)
	for _, r := range rows {
		k := clientKey(r)
		c, ok := acc[k]
		if !ok {
			c = &clientAcc{FrequentClient: FrequentClient{
				Name:     strings.TrimSpace(r.ClientName),
				LastName: strings.TrimSpace(r.ClientLastName),
			}}
			if r.ClientID != nil {
				id := *r.ClientID
				c.ClientID = &id
			}
			acc[k] = c
		}
		c.Cuts++
		c.cents += toCents(r.Amount)
		if r.CreatedAt.After(c.LastVisit) {
			c.LastVisit = r.CreatedAt
		}
	}

	list := make([]*clientAcc, 0, len(acc))
	for _, c := range acc {
		if c.Cuts >= opts.MinCuts {
			list = append(list, c)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Cuts != b.Cuts {
			return a.Cuts > b.Cuts
		}
		if a.cents != b.cents {
			return a.cents > b.cents
		}
		an := normalizeName(a.Name + " " + a.LastName)
		bn := normalizeName(b.Name + " " + b.LastName)
		if an != bn {
			return an < bn
		}
		return idOrZero(a.ClientID) < idOrZero(b.ClientID)
	})

	if len(list) > opts.Limit {
		list = list[:opts.Limit]
	}

	out := make([]FrequentClient, 0, len(list))
	for _, c := range list {
		fc := c.FrequentClient
		fc.TotalSpent = fromCents(c.cents)
		out = append(out, fc)
	}
	return out
}

func idOrZero(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
