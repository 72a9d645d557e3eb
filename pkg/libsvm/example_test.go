package libsvm_test

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-libsvm/pkg/libsvm"
)

func ExampleParse() {
	block, err := libsvm.Parse("1 1:1.0 3:1.0\n-1 2:0.5\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("rows:", block.NumRows())
	fmt.Println("labels:", block.Label)
	fmt.Println("index:", block.Index)
	fmt.Println("offset:", block.Offset)
	// Output:
	// rows: 2
	// labels: [1 -1]
	// index: [0 2 1]
	// offset: [0 2 3]
}

func ExampleParseWithOptions() {
	opts := libsvm.DefaultOptions()
	opts.IndexingMode = libsvm.IndexingZeroBased

	block, err := libsvm.ParseWithOptions("1 0:1.0 3:1.0\n", opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("index:", block.Index)
	// Output:
	// index: [0 3]
}

func ExampleParseReader() {
	r := strings.NewReader("1:2.5 qid:10 5:1.0\n0:1.0 qid:20 3:0.5\n")
	block, err := libsvm.ParseReader(r)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("weights:", block.Weight)
	fmt.Println("qids:", block.QID)
	// Output:
	// weights: [2.5 1]
	// qids: [10 20]
}

func ExampleRowBlock_Row() {
	block, _ := libsvm.Parse("1 1:0.5 4:1.5\n-1 2:1.0\n")
	row, _ := block.Row(0)
	fmt.Printf("label=%g features=%d\n", row.Label, len(row.Index))
	// Output:
	// label=1 features=2
}

func ExampleRender() {
	opts := libsvm.DefaultOptions()
	opts.IndexingMode = libsvm.IndexingZeroBased
	block, _ := libsvm.ParseWithOptions("1 0:1.5 2:2.5\n-1 1:0.5\n", opts)

	text, _ := libsvm.Render(block)
	fmt.Print(string(text))
	// Output:
	// 1 0:1.5 2:2.5
	// -1 1:0.5
}

func ExampleParser_ParseBlock() {
	p, err := libsvm.NewParser(libsvm.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var out libsvm.RowBlock
	for _, blockText := range []string{"1 1:1.0\n", "-1 2:0.5\n0 3:1.5\n"} {
		if err := p.ParseBlock([]byte(blockText), &out); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("rows:", out.NumRows())
	}
	// Output:
	// rows: 1
	// rows: 2
}
