package buffer

import "strings"

// Insert places text at p and returns the position just after the inserted
// content. Text may contain newlines, which split lines. Inserting the empty
// string is a no-op and does not advance the version.
//
// On failure the buffer is unchanged.
func (b *Buffer) Insert(p Pos, text string) (Pos, error) {
	p, err := b.check("insert", p)
	if err != nil {
		return Pos{}, err
	}
	if text == "" {
		return p, nil
	}

	parts := strings.Split(text, "\n")
	line := b.lines[p.Line]
	b.version++

	if len(parts) == 1 {
		ins := []rune(parts[0])
		next := make([]rune, 0, len(line)+len(ins))
		next = append(next, line[:p.Col]...)
		next = append(next, ins...)
		next = append(next, line[p.Col:]...)
		b.lines[p.Line] = next
		b.stamp(p.Line)
		return Pos{Line: p.Line, Col: p.Col + len(ins)}, nil
	}

	first := append([]rune(nil), line[:p.Col]...)
	first = append(first, []rune(parts[0])...)
	lastPart := []rune(parts[len(parts)-1])
	last := append([]rune(nil), lastPart...)
	last = append(last, line[p.Col:]...)

	fresh := make([][]rune, 0, len(parts))
	fresh = append(fresh, first)
	for _, mid := range parts[1 : len(parts)-1] {
		fresh = append(fresh, []rune(mid))
	}
	fresh = append(fresh, last)

	b.lines = spliceLines(b.lines, p.Line, 1, fresh)
	b.stamps = growStamps(b.stamps, p.Line, len(parts)-1)
	b.stampFrom(p.Line)

	return Pos{Line: p.Line + len(parts) - 1, Col: len(lastPart)}, nil
}

// Delete removes the content covered by r and returns it, with implicit
// newlines rendered as "\n". Reversed ranges are normalized first. An empty
// range is a no-op and does not advance the version.
//
// On failure the buffer is unchanged.
func (b *Buffer) Delete(r Range) (string, error) {
	r = r.Normalized()
	start, err := b.check("delete", r.Start)
	if err != nil {
		return "", err
	}
	end, err := b.check("delete", r.End)
	if err != nil {
		return "", err
	}
	if start == end {
		return "", nil
	}

	if start.Line == end.Line {
		line := b.lines[start.Line]
		deleted := string(line[start.Col:end.Col])
		b.version++
		next := make([]rune, 0, len(line)-(end.Col-start.Col))
		next = append(next, line[:start.Col]...)
		next = append(next, line[end.Col:]...)
		b.lines[start.Line] = next
		b.stamp(start.Line)
		return deleted, nil
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Line][start.Col:]))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Line][:end.Col]))
	deleted := sb.String()

	b.version++
	merged := make([]rune, 0, start.Col+len(b.lines[end.Line])-end.Col)
	merged = append(merged, b.lines[start.Line][:start.Col]...)
	merged = append(merged, b.lines[end.Line][end.Col:]...)

	b.lines = spliceLines(b.lines, start.Line, end.Line-start.Line+1, [][]rune{merged})
	b.stamps = shrinkStamps(b.stamps, start.Line, end.Line-start.Line)
	b.stampFrom(start.Line)

	return deleted, nil
}

// spliceLines replaces the run of removed lines starting at i with fresh.
func spliceLines(lines [][]rune, i, removed int, fresh [][]rune) [][]rune {
	out := make([][]rune, 0, len(lines)-removed+len(fresh))
	out = append(out, lines[:i]...)
	out = append(out, fresh...)
	out = append(out, lines[i+removed:]...)
	return out
}

// growStamps opens add slots after index i. The new slots are filled by the
// caller's restamp.
func growStamps(stamps []uint64, i, add int) []uint64 {
	out := make([]uint64, 0, len(stamps)+add)
	out = append(out, stamps[:i+1]...)
	out = append(out, make([]uint64, add)...)
	out = append(out, stamps[i+1:]...)
	return out
}

// shrinkStamps drops removed slots after index i.
func shrinkStamps(stamps []uint64, i, removed int) []uint64 {
	out := make([]uint64, 0, len(stamps)-removed)
	out = append(out, stamps[:i+1]...)
	out = append(out, stamps[i+1+removed:]...)
	return out
}
