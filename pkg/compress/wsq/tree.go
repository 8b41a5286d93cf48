package wsq

// waveletNode describes one region of the three-level decomposition. invrw
// and invcl mark whether the hi-pass subband precedes the lo-pass one along
// the row or column axis during synthesis.
type waveletNode struct {
	x, y         int
	lenx, leny   int
	invrw, invcl int
}

// quantNode is one of the 64 quantization subband rectangles.
type quantNode struct {
	x, y       int
	lenx, leny int
}

// buildTrees constructs the wavelet and quantization subband descriptors.
// Both are pure functions of the frame dimensions.
func (d *decoder) buildTrees(width, height int) {
	d.buildWTree(width, height)
	d.buildQTree()
}

func (d *decoder) buildWTree(width, height int) {
	for i := range d.wtree {
		d.wtree[i] = waveletNode{}
	}

	d.wtree[2].invrw = 1
	d.wtree[4].invrw = 1
	d.wtree[7].invrw = 1
	d.wtree[9].invrw = 1
	d.wtree[11].invrw = 1
	d.wtree[13].invrw = 1
	d.wtree[16].invrw = 1
	d.wtree[18].invrw = 1
	d.wtree[3].invcl = 1
	d.wtree[5].invcl = 1
	d.wtree[8].invcl = 1
	d.wtree[9].invcl = 1
	d.wtree[12].invcl = 1
	d.wtree[13].invcl = 1
	d.wtree[17].invcl = 1
	d.wtree[18].invcl = 1

	d.wtree4(0, 1, width, height, 0, 0, 1)

	var lenx, lenx2, leny, leny2 int
	if d.wtree[1].lenx%2 == 0 {
		lenx = d.wtree[1].lenx / 2
		lenx2 = lenx
	} else {
		lenx = (d.wtree[1].lenx + 1) / 2
		lenx2 = lenx - 1
	}

	if d.wtree[1].leny%2 == 0 {
		leny = d.wtree[1].leny / 2
		leny2 = leny
	} else {
		leny = (d.wtree[1].leny + 1) / 2
		leny2 = leny - 1
	}

	d.wtree4(4, 6, lenx2, leny, lenx, 0, 0)
	d.wtree4(5, 10, lenx, leny2, 0, leny, 0)
	d.wtree4(14, 15, lenx, leny, 0, 0, 0)

	d.wtree[19].x = 0
	d.wtree[19].y = 0
	if d.wtree[15].lenx%2 == 0 {
		d.wtree[19].lenx = d.wtree[15].lenx / 2
	} else {
		d.wtree[19].lenx = (d.wtree[15].lenx + 1) / 2
	}
	if d.wtree[15].leny%2 == 0 {
		d.wtree[19].leny = d.wtree[15].leny / 2
	} else {
		d.wtree[19].leny = (d.wtree[15].leny + 1) / 2
	}
}

// wtree4 splits one region into its four child subbands, storing the parent
// at p1 and the children at p2..p2+3. An odd extent gives the extra sample
// to the first half, except that node 4 gives its extra column and node 5
// its extra row to the second half.
func (d *decoder) wtree4(start1, start2, lenx, leny, x, y, stop1 int) {
	p1 := start1
	p2 := start2

	evenx := lenx % 2
	eveny := leny % 2

	d.wtree[p1].x = x
	d.wtree[p1].y = y
	d.wtree[p1].lenx = lenx
	d.wtree[p1].leny = leny

	d.wtree[p2].x = x
	d.wtree[p2+2].x = x
	d.wtree[p2].y = y
	d.wtree[p2+1].y = y

	if evenx == 0 {
		d.wtree[p2].lenx = lenx / 2
		d.wtree[p2+1].lenx = d.wtree[p2].lenx
	} else {
		if p1 == 4 {
			d.wtree[p2].lenx = (lenx - 1) / 2
			d.wtree[p2+1].lenx = d.wtree[p2].lenx + 1
		} else {
			d.wtree[p2].lenx = (lenx + 1) / 2
			d.wtree[p2+1].lenx = d.wtree[p2].lenx - 1
		}
	}
	d.wtree[p2+1].x = d.wtree[p2].lenx + x
	if stop1 == 0 {
		d.wtree[p2+3].lenx = d.wtree[p2+1].lenx
		d.wtree[p2+3].x = d.wtree[p2+1].x
	}
	d.wtree[p2+2].lenx = d.wtree[p2].lenx

	if eveny == 0 {
		d.wtree[p2].leny = leny / 2
		d.wtree[p2+2].leny = d.wtree[p2].leny
	} else {
		if p1 == 5 {
			d.wtree[p2].leny = (leny - 1) / 2
			d.wtree[p2+2].leny = d.wtree[p2].leny + 1
		} else {
			d.wtree[p2].leny = (leny + 1) / 2
			d.wtree[p2+2].leny = d.wtree[p2].leny - 1
		}
	}
	d.wtree[p2+2].y = d.wtree[p2].leny + y
	if stop1 == 0 {
		d.wtree[p2+3].leny = d.wtree[p2+2].leny
		d.wtree[p2+3].y = d.wtree[p2+2].y
	}
	d.wtree[p2+1].leny = d.wtree[p2].leny
}

func (d *decoder) buildQTree() {
	for i := range d.qtree {
		d.qtree[i] = quantNode{}
	}

	d.qtree16(3, d.wtree[14].lenx, d.wtree[14].leny, d.wtree[14].x, d.wtree[14].y, 0, 0)
	d.qtree16(19, d.wtree[4].lenx, d.wtree[4].leny, d.wtree[4].x, d.wtree[4].y, 0, 1)
	d.qtree16(48, d.wtree[0].lenx, d.wtree[0].leny, d.wtree[0].x, d.wtree[0].y, 0, 0)
	d.qtree16(35, d.wtree[5].lenx, d.wtree[5].leny, d.wtree[5].x, d.wtree[5].y, 1, 0)
	d.qtree4(0, d.wtree[19].lenx, d.wtree[19].leny, d.wtree[19].x, d.wtree[19].y)
}

// qtree16 lays out sixteen subband rectangles for one quadrant of the
// decomposition. rw/cl select which half takes the extra sample when an
// extent is odd.
func (d *decoder) qtree16(start, lenx, leny, x, y, rw, cl int) {
	p := start
	evenx := lenx % 2
	eveny := leny % 2

	var tempx, temp2x, tempy, temp2y int
	if evenx == 0 {
		tempx = lenx / 2
		temp2x = tempx
	} else {
		if cl != 0 {
			temp2x = (lenx + 1) / 2
			tempx = temp2x - 1
		} else {
			tempx = (lenx + 1) / 2
			temp2x = tempx - 1
		}
	}

	if eveny == 0 {
		tempy = leny / 2
		temp2y = tempy
	} else {
		if rw != 0 {
			temp2y = (leny + 1) / 2
			tempy = temp2y - 1
		} else {
			tempy = (leny + 1) / 2
			temp2y = tempy - 1
		}
	}

	evenx = tempx % 2
	eveny = tempy % 2

	d.qtree[p].x = x
	d.qtree[p+2].x = x
	d.qtree[p].y = y
	d.qtree[p+1].y = y
	if evenx == 0 {
		d.qtree[p].lenx = tempx / 2
		d.qtree[p+1].lenx = d.qtree[p].lenx
		d.qtree[p+2].lenx = d.qtree[p].lenx
		d.qtree[p+3].lenx = d.qtree[p].lenx
	} else {
		d.qtree[p].lenx = (tempx + 1) / 2
		d.qtree[p+1].lenx = d.qtree[p].lenx - 1
		d.qtree[p+2].lenx = d.qtree[p].lenx
		d.qtree[p+3].lenx = d.qtree[p+1].lenx
	}
	d.qtree[p+1].x = x + d.qtree[p].lenx
	d.qtree[p+3].x = d.qtree[p+1].x
	if eveny == 0 {
		d.qtree[p].leny = tempy / 2
		d.qtree[p+1].leny = d.qtree[p].leny
		d.qtree[p+2].leny = d.qtree[p].leny
		d.qtree[p+3].leny = d.qtree[p].leny
	} else {
		d.qtree[p].leny = (tempy + 1) / 2
		d.qtree[p+1].leny = d.qtree[p].leny
		d.qtree[p+2].leny = d.qtree[p].leny - 1
		d.qtree[p+3].leny = d.qtree[p+2].leny
	}
	d.qtree[p+2].y = y + d.qtree[p].leny
	d.qtree[p+3].y = d.qtree[p+2].y

	evenx = temp2x % 2

	d.qtree[p+4].x = x + tempx
	d.qtree[p+6].x = d.qtree[p+4].x
	d.qtree[p+4].y = y
	d.qtree[p+5].y = y
	d.qtree[p+6].y = d.qtree[p+2].y
	d.qtree[p+7].y = d.qtree[p+2].y
	d.qtree[p+4].leny = d.qtree[p].leny
	d.qtree[p+5].leny = d.qtree[p].leny
	d.qtree[p+6].leny = d.qtree[p+2].leny
	d.qtree[p+7].leny = d.qtree[p+2].leny
	if evenx == 0 {
		d.qtree[p+4].lenx = temp2x / 2
		d.qtree[p+5].lenx = d.qtree[p+4].lenx
		d.qtree[p+6].lenx = d.qtree[p+4].lenx
		d.qtree[p+7].lenx = d.qtree[p+4].lenx
	} else {
		d.qtree[p+5].lenx = (temp2x + 1) / 2
		d.qtree[p+4].lenx = d.qtree[p+5].lenx - 1
		d.qtree[p+6].lenx = d.qtree[p+4].lenx
		d.qtree[p+7].lenx = d.qtree[p+5].lenx
	}
	d.qtree[p+5].x = d.qtree[p+4].x + d.qtree[p+4].lenx
	d.qtree[p+7].x = d.qtree[p+5].x

	eveny = temp2y % 2

	d.qtree[p+8].x = x
	d.qtree[p+9].x = d.qtree[p+1].x
	d.qtree[p+10].x = x
	d.qtree[p+11].x = d.qtree[p+1].x
	d.qtree[p+8].y = y + tempy
	d.qtree[p+9].y = d.qtree[p+8].y
	d.qtree[p+8].lenx = d.qtree[p].lenx
	d.qtree[p+9].lenx = d.qtree[p+1].lenx
	d.qtree[p+10].lenx = d.qtree[p].lenx
	d.qtree[p+11].lenx = d.qtree[p+1].lenx
	if eveny == 0 {
		d.qtree[p+8].leny = temp2y / 2
		d.qtree[p+9].leny = d.qtree[p+8].leny
		d.qtree[p+10].leny = d.qtree[p+8].leny
		d.qtree[p+11].leny = d.qtree[p+8].leny
	} else {
		d.qtree[p+10].leny = (temp2y + 1) / 2
		d.qtree[p+11].leny = d.qtree[p+10].leny
		d.qtree[p+8].leny = d.qtree[p+10].leny - 1
		d.qtree[p+9].leny = d.qtree[p+8].leny
	}
	d.qtree[p+10].y = d.qtree[p+8].y + d.qtree[p+8].leny
	d.qtree[p+11].y = d.qtree[p+10].y

	d.qtree[p+12].x = d.qtree[p+4].x
	d.qtree[p+13].x = d.qtree[p+5].x
	d.qtree[p+14].x = d.qtree[p+4].x
	d.qtree[p+15].x = d.qtree[p+5].x
	d.qtree[p+12].y = d.qtree[p+8].y
	d.qtree[p+13].y = d.qtree[p+8].y
	d.qtree[p+14].y = d.qtree[p+10].y
	d.qtree[p+15].y = d.qtree[p+10].y
	d.qtree[p+12].lenx = d.qtree[p+4].lenx
	d.qtree[p+13].lenx = d.qtree[p+5].lenx
	d.qtree[p+14].lenx = d.qtree[p+4].lenx
	d.qtree[p+15].lenx = d.qtree[p+5].lenx
	d.qtree[p+12].leny = d.qtree[p+8].leny
	d.qtree[p+13].leny = d.qtree[p+8].leny
	d.qtree[p+14].leny = d.qtree[p+10].leny
	d.qtree[p+15].leny = d.qtree[p+10].leny
}

// qtree4 lays out the four lowest-frequency subbands.
func (d *decoder) qtree4(start, lenx, leny, x, y int) {
	p := start
	evenx := lenx % 2
	eveny := leny % 2

	d.qtree[p].x = x
	d.qtree[p+2].x = x
	d.qtree[p].y = y
	d.qtree[p+1].y = y
	if evenx == 0 {
		d.qtree[p].lenx = lenx / 2
		d.qtree[p+1].lenx = d.qtree[p].lenx
		d.qtree[p+2].lenx = d.qtree[p].lenx
		d.qtree[p+3].lenx = d.qtree[p].lenx
	} else {
		d.qtree[p].lenx = (lenx + 1) / 2
		d.qtree[p+1].lenx = d.qtree[p].lenx - 1
		d.qtree[p+2].lenx = d.qtree[p].lenx
		d.qtree[p+3].lenx = d.qtree[p+1].lenx
	}
	d.qtree[p+1].x = x + d.qtree[p].lenx
	d.qtree[p+3].x = d.qtree[p+1].x
	if eveny == 0 {
		d.qtree[p].leny = leny / 2
		d.qtree[p+1].leny = d.qtree[p].leny
		d.qtree[p+2].leny = d.qtree[p].leny
		d.qtree[p+3].leny = d.qtree[p].leny
	} else {
		d.qtree[p].leny = (leny + 1) / 2
		d.qtree[p+1].leny = d.qtree[p].leny
		d.qtree[p+2].leny = d.qtree[p].leny - 1
		d.qtree[p+3].leny = d.qtree[p+2].leny
	}
	d.qtree[p+2].y = y + d.qtree[p].leny
	d.qtree[p+3].y = d.qtree[p+2].y
}
