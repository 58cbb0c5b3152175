package engine

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-patro/internal/calendar"
	"github.com/tartampluch/go-patro/internal/config"
)

// EncodeICS renders every CurrentMonth day of pages as an all-day event on
// its AD date, titled with the BS date. The output is a stub calendar when
// pages hold no such day.
func EncodeICS(pages []MonthPage, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()

	// Set standard iCalendar headers
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: Suggest a refresh interval
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	var pairs dayPairs
	for _, p := range pages {
		for _, d := range p.Days(CurrentMonth) {
			ad, bs := pairs.next(d.Date)
			event := newDayEvent(ad, bs)
			event.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, event.Component)
		}
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// newDayEvent builds the all-day event of one day.
func newDayEvent(ad, bs calendar.Date) *ical.Event {
	// Deterministic UID generation for stability across refreshes
	input := fmt.Sprintf(config.FormatHashInput, ad, bs, config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uid := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uid, config.ICalDomain))
	event.Props.SetText(config.PropSummary, daySummary(bs))
	event.Props.SetText(config.PropDescription, bs.String()+" / "+ad.String())
	event.Props.SetText(config.PropTransp, config.ICalTransparent)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(time.Date(ad.Year(), time.Month(ad.Month()), ad.Day(), 0, 0, 0, 0, time.UTC))
	event.Props.Set(dtStartProp)
	return event
}

// daySummary formats d as e.g. "Bhadra 12, 2081 BS".
func daySummary(d calendar.Date) string {
	return fmt.Sprintf(config.FormatDaySummary, d.Month().Name(d.System()), d.Day(), d.Year(), d.System())
}

// dayPairs resolves the AD and BS forms of a run of dates. Consecutive
// dates advance the previous pair by one day instead of converting again.
type dayPairs struct {
	last   calendar.Date
	ad, bs calendar.Date
}

func (p *dayPairs) next(d calendar.Date) (ad, bs calendar.Date) {
	if !p.last.IsZero() && d == p.last.PlusDays(1) {
		p.ad, p.bs = p.ad.PlusDays(1), p.bs.PlusDays(1)
	} else {
		p.ad, p.bs = calendar.Convert(d, calendar.AD), calendar.Convert(d, calendar.BS)
	}
	p.last = d
	return p.ad, p.bs
}

// jsonDay is the wire form of one grid cell.
type jsonDay struct {
	System calendar.System `json:"system"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Day    int             `json:"day"`
	Owner  DayOwner        `json:"owner"`
}

// jsonPage is the wire form of a MonthPage.
type jsonPage struct {
	System       calendar.System `json:"system"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	MonthName    string          `json:"month_name"`
	IndexInGroup int             `json:"index_in_group"`
	GroupSize    int             `json:"group_size"`
	WeekRows     [][]jsonDay     `json:"week_rows"`
}

// EncodeJSON renders pages as a JSON array, one object per page with every
// cell as (system, year, month, day, owner).
func EncodeJSON(pages []MonthPage) ([]byte, error) {
	out := make([]jsonPage, 0, len(pages))
	for _, p := range pages {
		jp := jsonPage{
			System:       p.YearMonth.System,
			Year:         p.YearMonth.Year,
			Month:        int(p.YearMonth.Month),
			MonthName:    p.YearMonth.Month.Name(p.YearMonth.System),
			IndexInGroup: p.IndexInGroup,
			GroupSize:    p.GroupSize,
			WeekRows:     make([][]jsonDay, 0, len(p.WeekRows)),
		}
		for _, row := range p.WeekRows {
			cells := make([]jsonDay, 0, len(row))
			for _, d := range row {
				cells = append(cells, jsonDay{
					System: d.Date.System(),
					Year:   d.Date.Year(),
					Month:  int(d.Date.Month()),
					Day:    d.Date.Day(),
					Owner:  d.Owner,
				})
			}
			jp.WeekRows = append(jp.WeekRows, cells)
		}
		out = append(out, jp)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrJSONEncode, err)
	}
	return data, nil
}
