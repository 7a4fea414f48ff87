package pagination

import "testing"

func TestWindowDefaults(t *testing.T) {
	start, end, info := Pagination{}.Window(10)
	if start != 0 || end != 10 {
		t.Fatalf("window = [%d,%d), want [0,10)", start, end)
	}
	if info.NextPageToken != "" || info.TotalSize != 10 {
		t.Fatalf("info = %+v", info)
	}
}

func TestWindowPaging(t *testing.T) {
	start, end, info := Pagination{PageSize: 10}.Window(25)
	if start != 0 || end != 10 || info.NextPageToken != "10" {
		t.Fatalf("first page = [%d,%d) token=%q", start, end, info.NextPageToken)
	}

	start, end, info = Pagination{PageToken: "10", PageSize: 10}.Window(25)
	if start != 10 || end != 20 || info.NextPageToken != "20" {
		t.Fatalf("second page = [%d,%d) token=%q", start, end, info.NextPageToken)
	}

	start, end, info = Pagination{PageToken: "20", PageSize: 10}.Window(25)
	if start != 20 || end != 25 || info.NextPageToken != "" {
		t.Fatalf("last page = [%d,%d) token=%q", start, end, info.NextPageToken)
	}
}

func TestWindowBadToken(t *testing.T) {
	start, end, _ := Pagination{PageToken: "garbage", PageSize: 5}.Window(8)
	if start != 0 || end != 5 {
		t.Fatalf("bad token window = [%d,%d), want [0,5)", start, end)
	}
}

func TestWindowTokenPastEnd(t *testing.T) {
	start, end, info := Pagination{PageToken: "100", PageSize: 5}.Window(8)
	if start != 8 || end != 8 || info.NextPageToken != "" {
		t.Fatalf("past-end window = [%d,%d) token=%q", start, end, info.NextPageToken)
	}
}

func TestWindowCapsPageSize(t *testing.T) {
	_, end, _ := Pagination{PageSize: 10000}.Window(1000)
	if end != 200 {
		t.Fatalf("end = %d, want cap at 200", end)
	}
}
