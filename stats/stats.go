// Package stats parses the message-statistics XML returned by the
// iContact API. The statistics endpoints are the one part of the API
// that still answers in markup: a stats element with one child per
// metric kind, and contact elements describing who performed each
// action and when.
package stats

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// XLinkNamespace is the namespace the API announces for link attributes.
const XLinkNamespace = "http://www.w3.org/1999/xlink"

// Metric kinds reported by the API.
const (
	KindReleased     = "released"
	KindBounces      = "bounces"
	KindUnsubscribes = "unsubscribes"
	KindOpens        = "opens"
	KindClicks       = "clicks"
	KindForwards     = "forwards"
	KindComments     = "comments"
	KindComplaints   = "complaints"
)

// kinds lists the metric children recognized under a stats node.
var kinds = []string{
	KindReleased,
	KindBounces,
	KindUnsubscribes,
	KindOpens,
	KindClicks,
	KindForwards,
	KindComments,
	KindComplaints,
}

// Summary is the parsed form of one metric element. A metric the API
// did not report produces no Summary at all, never a zero-filled one.
type Summary struct {
	// Count is the number of events. Defaults to zero when the count
	// attribute is absent.
	Count int
	// Percent is the share of recipients. The attribute is mandatory;
	// its absence is a parse failure.
	Percent float64
	// Unique is the deduplicated event count, present only for kinds
	// that report it (opens, clicks).
	Unique int
	// HasUnique reports whether Unique was present.
	HasUnique bool
	// Link is the xlink href pointing at the metric's detail resource.
	Link string
}

// ContactActivity records the events of one contact in a metric detail
// response.
type ContactActivity struct {
	Email string
	Name  string
	Link  string
	// Dates holds the parsed timestamps of each recorded event.
	Dates []time.Time
}

// MessageStats is the parsed statistics document.
type MessageStats struct {
	// Summaries maps metric kind to its summary. Absent metrics have
	// no entry.
	Summaries map[string]Summary
	// Contacts lists per-contact activity, present only in metric
	// detail responses.
	Contacts []ContactActivity
}

// Summary returns the summary for a metric kind.
func (m *MessageStats) Summary(kind string) (Summary, bool) {
	s, ok := m.Summaries[kind]
	return s, ok
}

// node is a generic element tree. The stats shape carries its payload in
// attributes with namespaced links, which is easier to walk generically
// than to map onto fixed structs.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) linkAttr() string {
	for _, a := range n.Attrs {
		if a.Name.Space == XLinkNamespace && a.Name.Local == "href" {
			return a.Value
		}
	}
	return ""
}

func (n *node) child(name string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// Parse parses a statistics document. The document may be the bare stats
// element or a larger response wrapping one.
func Parse(data []byte) (*MessageStats, error) {
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("stats: parse document: %w", err)
	}

	statsNode := findStats(&root)
	if statsNode == nil {
		return nil, fmt.Errorf("stats: no stats element in document")
	}

	result := &MessageStats{Summaries: make(map[string]Summary)}
	for _, kind := range kinds {
		child := statsNode.child(kind)
		if child == nil {
			continue
		}
		summary, err := parseSummary(kind, child)
		if err != nil {
			return nil, err
		}
		result.Summaries[kind] = summary
	}

	contacts, err := parseContacts(statsNode)
	if err != nil {
		return nil, err
	}
	result.Contacts = contacts
	return result, nil
}

func findStats(n *node) *node {
	if n.XMLName.Local == "stats" {
		return n
	}
	for i := range n.Children {
		if found := findStats(&n.Children[i]); found != nil {
			return found
		}
	}
	return nil
}

func parseSummary(kind string, n *node) (Summary, error) {
	var summary Summary

	if raw, ok := n.attr("count"); ok && raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return summary, fmt.Errorf("stats: %s: bad count %q: %w", kind, raw, err)
		}
		summary.Count = count
	}

	raw, ok := n.attr("percent")
	if !ok {
		return summary, fmt.Errorf("stats: %s: missing percent attribute", kind)
	}
	percent, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return summary, fmt.Errorf("stats: %s: bad percent %q: %w", kind, raw, err)
	}
	summary.Percent = percent

	if raw, ok := n.attr("unique"); ok && raw != "" {
		unique, err := strconv.Atoi(raw)
		if err != nil {
			return summary, fmt.Errorf("stats: %s: bad unique %q: %w", kind, raw, err)
		}
		summary.Unique = unique
		summary.HasUnique = true
	}

	summary.Link = n.linkAttr()
	return summary, nil
}

// parseContacts walks every contact element one level below the stats
// node's kind children.
func parseContacts(statsNode *node) ([]ContactActivity, error) {
	var contacts []ContactActivity
	for i := range statsNode.Children {
		kindNode := &statsNode.Children[i]
		for j := range kindNode.Children {
			c := &kindNode.Children[j]
			if c.XMLName.Local != "contact" {
				continue
			}
			contact, err := parseContact(c)
			if err != nil {
				return nil, err
			}
			contacts = append(contacts, contact)
		}
	}
	return contacts, nil
}

func parseContact(n *node) (ContactActivity, error) {
	email, _ := n.attr("email")
	name, _ := n.attr("name")
	contact := ContactActivity{
		Email: email,
		Name:  name,
		Link:  n.linkAttr(),
	}
	for i := range n.Children {
		event := &n.Children[i]
		raw, ok := event.attr("date")
		if !ok {
			return contact, fmt.Errorf("stats: contact %s: %s event missing date attribute",
				contact.Email, event.XMLName.Local)
		}
		date, err := parseDate(raw)
		if err != nil {
			return contact, fmt.Errorf("stats: contact %s: %w", contact.Email, err)
		}
		contact.Dates = append(contact.Dates, date)
	}
	return contact, nil
}

// dateLayouts are tried in order; the API has shifted formats over time.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02",
}

func parseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
