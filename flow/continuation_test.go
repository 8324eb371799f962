package flow

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tsawler/inlay/locate"
	"github.com/tsawler/inlay/model"
)

func twoPageDoc() (*model.Document, *model.PageRecord, *model.PageRecord) {
	doc := model.NewDocument()
	p0 := doc.AddPage(612, 792, model.NewPageIndex(0, 612, 792))
	p1 := doc.AddPage(612, 792, model.NewPageIndex(1, 612, 792))
	return doc, p0, p1
}

func makeJob(label string, src model.PageHandle, lines int, images ...model.ImageAsset) *model.ContinuationJob {
	job := &model.ContinuationJob{
		Label:      label,
		Images:     images,
		FontSize:   10,
		LineHeight: 12,
		SourcePage: src,
		PageWidth:  612,
		PageHeight: 792,
	}
	for i := 0; i < lines; i++ {
		job.Lines = append(job.Lines, fmt.Sprintf("%s line %d", label, i+1))
	}
	return job
}

func TestProcessInsertsAfterSource(t *testing.T) {
	doc, p0, p1 := twoPageDoc()
	dev := &fakeDevice{imgW: 800, imgH: 600}
	mgr := &Manager{Doc: doc, Dev: dev, Config: DefaultConfig()}

	img := model.ImageAsset{Data: []byte{1}, Format: model.ImageFormatPNG}
	if err := mgr.Process([]*model.ContinuationJob{makeJob("R5", p0.Handle, 4, img)}); err != nil {
		t.Fatal(err)
	}

	if doc.Len() != 3 {
		t.Fatalf("document has %d pages, want 3", doc.Len())
	}
	recs := doc.Records()
	cont := recs[1]
	if !cont.Continuation || cont.SourceLabel != "R5" {
		t.Fatalf("record 1 = %+v, want R5 continuation", cont)
	}
	if recs[0] != p0 || recs[2] != p1 {
		t.Error("source pages reordered around the insertion")
	}

	texts := dev.textsOn(cont.Handle)
	if len(texts) != 5 {
		t.Fatalf("continuation page carries %d texts, want header + 4 lines", len(texts))
	}
	if texts[0] != "(Continuation of R5)" {
		t.Errorf("header = %q", texts[0])
	}
	for i, want := range []string{"R5 line 1", "R5 line 2", "R5 line 3", "R5 line 4"} {
		if texts[i+1] != want {
			t.Errorf("line %d = %q, want %q", i, texts[i+1], want)
		}
	}
}

func TestProcessScalesImageToFit(t *testing.T) {
	doc, p0, _ := twoPageDoc()
	cfg := DefaultConfig()
	dev := &fakeDevice{imgW: 800, imgH: 600}
	mgr := &Manager{Doc: doc, Dev: dev, Config: cfg}

	img := model.ImageAsset{Data: []byte{1}, Format: model.ImageFormatPNG}
	if err := mgr.Process([]*model.ContinuationJob{makeJob("R5", p0.Handle, 4, img)}); err != nil {
		t.Fatal(err)
	}

	var placed *deviceCall
	for i := range dev.calls {
		if dev.calls[i].kind == "image" {
			placed = &dev.calls[i]
		}
	}
	if placed == nil {
		t.Fatal("image never placed")
	}
	// 800x600 capped at MaxImageWidth keeps its 4:3 aspect.
	if placed.w != cfg.MaxImageWidth || placed.h != 300 {
		t.Errorf("image placed at %vx%v, want %vx300", placed.w, placed.h, cfg.MaxImageWidth)
	}
	if placed.x != cfg.LeftMargin {
		t.Errorf("image at x=%v, want left margin", placed.x)
	}
	// Header at 742, two line heights down, four lines, then the image
	// bottom-anchored below the text.
	wantY := (792 - cfg.TopMargin) - 2*12 - 4*12 - placed.h
	if placed.y != wantY {
		t.Errorf("image at y=%v, want %v", placed.y, wantY)
	}
}

func TestProcessOverflowOpensSecondPage(t *testing.T) {
	doc, p0, p1 := twoPageDoc()
	dev := &fakeDevice{}
	mgr := &Manager{Doc: doc, Dev: dev, Config: DefaultConfig()}

	if err := mgr.Process([]*model.ContinuationJob{makeJob("Q12", p0.Handle, 60)}); err != nil {
		t.Fatal(err)
	}

	if doc.Len() != 4 {
		t.Fatalf("document has %d pages, want 4", doc.Len())
	}
	recs := doc.Records()
	if recs[0] != p0 || recs[3] != p1 {
		t.Fatal("source pages not framing the continuation run")
	}
	for _, rec := range recs[1:3] {
		if !rec.Continuation || rec.SourceLabel != "Q12" {
			t.Errorf("record %+v, want Q12 continuation", rec)
		}
		texts := dev.textsOn(rec.Handle)
		if len(texts) == 0 || texts[0] != "(Continuation of Q12)" {
			t.Errorf("page %d missing header, texts = %v", rec.Handle, texts)
		}
	}

	var lines int
	for _, c := range dev.calls {
		if c.kind == "text" && strings.HasPrefix(c.text, "Q12 line") {
			lines++
		}
	}
	if lines != 60 {
		t.Errorf("placed %d lines across continuation pages, want 60", lines)
	}
}

func TestProcessGroupsFollowDocumentOrder(t *testing.T) {
	doc, p0, p1 := twoPageDoc()
	dev := &fakeDevice{}
	mgr := &Manager{Doc: doc, Dev: dev, Config: DefaultConfig()}

	// Jobs arrive with the later page's job first; output order follows the
	// document, not the input.
	jobs := []*model.ContinuationJob{
		makeJob("R9", p1.Handle, 3),
		makeJob("Q2", p0.Handle, 3),
	}
	if err := mgr.Process(jobs); err != nil {
		t.Fatal(err)
	}

	var labels []string
	for _, rec := range doc.Records() {
		if rec.Continuation {
			labels = append(labels, rec.SourceLabel)
		}
	}
	if len(labels) != 2 || labels[0] != "Q2" || labels[1] != "R9" {
		t.Errorf("continuation order = %v, want [Q2 R9]", labels)
	}
	n0, _ := doc.PageNumber(p0.Handle)
	n1, _ := doc.PageNumber(p1.Handle)
	if n0 != 1 || n1 != 3 {
		t.Errorf("source pages at %d and %d, want 1 and 3", n0, n1)
	}
}

func TestProcessSharedPageJobsShareContinuations(t *testing.T) {
	doc, p0, _ := twoPageDoc()
	dev := &fakeDevice{}
	mgr := &Manager{Doc: doc, Dev: dev, Config: DefaultConfig()}

	jobs := []*model.ContinuationJob{
		makeJob("Q1", p0.Handle, 2),
		makeJob("Q2", p0.Handle, 2),
	}
	if err := mgr.Process(jobs); err != nil {
		t.Fatal(err)
	}

	// Both jobs fit on the one page opened for the first of them.
	if doc.Len() != 3 {
		t.Fatalf("document has %d pages, want 3", doc.Len())
	}
	cont := doc.Records()[1]
	texts := dev.textsOn(cont.Handle)
	want := []string{"(Continuation of Q1)", "Q1 line 1", "Q1 line 2", "Q2 line 1", "Q2 line 2"}
	if len(texts) != len(want) {
		t.Fatalf("texts = %v", texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("text %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestProcessDefersImageWithoutRoom(t *testing.T) {
	doc, p0, _ := twoPageDoc()
	cfg := DefaultConfig()
	dev := &fakeDevice{imgW: 400, imgH: 300}
	mgr := &Manager{Doc: doc, Dev: dev, Config: cfg}

	// 40 lines leave the cursor too low for a 300pt image; it moves to a
	// second continuation page.
	img := model.ImageAsset{Data: []byte{1}, Format: model.ImageFormatPNG}
	if err := mgr.Process([]*model.ContinuationJob{makeJob("R3", p0.Handle, 40, img)}); err != nil {
		t.Fatal(err)
	}

	if doc.Len() != 4 {
		t.Fatalf("document has %d pages, want 4", doc.Len())
	}
	second := doc.Records()[2]
	var placed *deviceCall
	for i := range dev.calls {
		if dev.calls[i].kind == "image" {
			placed = &dev.calls[i]
		}
	}
	if placed == nil {
		t.Fatal("image never placed")
	}
	if placed.page != second.Handle {
		t.Errorf("image on page %d, want deferred to %d", placed.page, second.Handle)
	}
	wantY := (792 - cfg.TopMargin) - 2*12 - placed.h
	if placed.y != wantY {
		t.Errorf("image at y=%v, want %v", placed.y, wantY)
	}
}

func TestProcessSkipsUnreadableImage(t *testing.T) {
	doc, p0, _ := twoPageDoc()
	dev := &fakeDevice{sizeErr: errUnsupported}
	mgr := &Manager{Doc: doc, Dev: dev, Config: DefaultConfig()}

	img := model.ImageAsset{Data: []byte{0xde, 0xad}, Format: model.ImageFormatUnknown}
	if err := mgr.Process([]*model.ContinuationJob{makeJob("Q4", p0.Handle, 1, img)}); err != nil {
		t.Fatal(err)
	}

	for _, c := range dev.calls {
		if c.kind == "image" {
			t.Fatal("unreadable image was placed")
		}
	}
	if dev.skipped != 1 {
		t.Errorf("device consulted %d times for size, want 1", dev.skipped)
	}
	// The line still lands on the continuation page.
	cont := doc.Records()[1]
	texts := dev.textsOn(cont.Handle)
	if len(texts) != 2 || texts[1] != "Q4 line 1" {
		t.Errorf("texts = %v", texts)
	}
}

// The writer and manager together: a five-line answer with one image leaves
// one line in-box and flows four lines plus the scaled image onto a single
// continuation page directly after the source page.
func TestWriteAndFlowOverflowingRow(t *testing.T) {
	doc, p0, p1 := twoPageDoc()
	dev := &fakeDevice{imgW: 800, imgH: 600}
	cfg := DefaultConfig()

	w := &Writer{Dev: dev, Width: fixedWidth, Config: cfg}
	m := locate.Match{Label: "R5", X: 100, Y: 700, Width: 50, FontSize: 10, Keyword: "Compliancy"}
	answer := strings.TrimSpace(strings.Repeat("alpha ", 48)) // wraps to 5 lines
	row := model.AnswerRow{
		Label: "R5", Type: model.RowRequirement, Answer: answer,
		Images: []model.ImageAsset{{Data: []byte{1}, Format: model.ImageFormatPNG}},
	}

	p := w.Write(p0, m, row)
	if p.Total != 5 || p.Lines != 1 {
		t.Fatalf("placement = %+v, want 1 of 5 in-box", p)
	}
	if p.Job == nil || len(p.Job.Lines) != 4 || len(p.Job.Images) != 1 {
		t.Fatalf("job = %+v, want 4 lines and 1 image", p.Job)
	}

	mgr := &Manager{Doc: doc, Dev: dev, Config: cfg}
	if err := mgr.Process([]*model.ContinuationJob{p.Job}); err != nil {
		t.Fatal(err)
	}

	if doc.Len() != 3 {
		t.Fatalf("document has %d pages, want 3", doc.Len())
	}
	cont := doc.Records()[1]
	if !cont.Continuation || doc.Records()[2] != p1 {
		t.Fatal("continuation page not directly after the source page")
	}
	texts := dev.textsOn(cont.Handle)
	if len(texts) != 5 || texts[0] != "(Continuation of R5)" {
		t.Fatalf("continuation texts = %v", texts)
	}

	// Rejoining the in-box line and the continuation lines restores the
	// answer.
	all := append([]string{dev.textsOn(p0.Handle)[0]}, texts[1:]...)
	if got := strings.Join(all, " "); got != answer {
		t.Errorf("rejoined text differs from answer:\n got %q\nwant %q", got, answer)
	}

	var img *deviceCall
	for i := range dev.calls {
		if dev.calls[i].kind == "image" {
			img = &dev.calls[i]
		}
	}
	if img == nil || img.page != cont.Handle {
		t.Fatal("image missing from the continuation page")
	}
	if img.w != cfg.MaxImageWidth || img.h != 300 {
		t.Errorf("image scaled to %vx%v, want %vx300", img.w, img.h, cfg.MaxImageWidth)
	}
}

func TestProcessShortPagePendingImage(t *testing.T) {
	// A 216pt page cannot reach the image reserve after header and margins;
	// the fresh-page guarantee must still drain the job instead of opening
	// pages forever.
	doc := model.NewDocument()
	p0 := doc.AddPage(612, 216, model.NewPageIndex(0, 612, 216))
	dev := &fakeDevice{imgW: 800, imgH: 600}
	mgr := &Manager{Doc: doc, Dev: dev, Config: DefaultConfig()}

	img := model.ImageAsset{Data: []byte{1}, Format: model.ImageFormatPNG}
	job := makeJob("Q6", p0.Handle, 1, img)
	job.PageHeight = 216
	if err := mgr.Process([]*model.ContinuationJob{job}); err != nil {
		t.Fatal(err)
	}

	if doc.Len() != 3 {
		t.Fatalf("document has %d pages, want 3", doc.Len())
	}
	first := doc.Records()[1]
	texts := dev.textsOn(first.Handle)
	if len(texts) != 2 || texts[1] != "Q6 line 1" {
		t.Errorf("first continuation texts = %v", texts)
	}
	var images int
	for _, c := range dev.calls {
		if c.kind == "image" {
			images++
		}
	}
	if images != 1 {
		t.Errorf("placed %d images, want 1", images)
	}
}

func TestProcessShortPageLinesOnly(t *testing.T) {
	// A page shorter than top margin + bottom margin + two line heights still
	// makes progress: one line per fresh page.
	doc := model.NewDocument()
	p0 := doc.AddPage(612, 120, model.NewPageIndex(0, 612, 120))
	dev := &fakeDevice{}
	mgr := &Manager{Doc: doc, Dev: dev, Config: DefaultConfig()}

	job := makeJob("R8", p0.Handle, 3)
	job.PageHeight = 120
	if err := mgr.Process([]*model.ContinuationJob{job}); err != nil {
		t.Fatal(err)
	}

	if doc.Len() != 4 {
		t.Fatalf("document has %d pages, want 4", doc.Len())
	}
	for i, rec := range doc.Records()[1:] {
		texts := dev.textsOn(rec.Handle)
		want := fmt.Sprintf("R8 line %d", i+1)
		if len(texts) != 2 || texts[1] != want {
			t.Errorf("page %d texts = %v, want header + %q", i+1, texts, want)
		}
	}
}

func TestProcessNoJobs(t *testing.T) {
	doc, _, _ := twoPageDoc()
	mgr := &Manager{Doc: doc, Dev: &fakeDevice{}, Config: DefaultConfig()}
	if err := mgr.Process(nil); err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 2 {
		t.Errorf("document grew to %d pages with no jobs", doc.Len())
	}
}
