package wsq

// unquantize maps quantized coefficients back to floats, subband by
// subband. Bins with a zero quantization step carry no data and are
// skipped; nonzero values get the dead-zone and bin-center offsets.
func (d *decoder) unquantize(sip []int, width, height int) ([]float32, error) {
	fip := make([]float32, width*height)

	if !d.dqt.defined {
		return nil, d.errorf("quantization table not defined")
	}

	binCenter := d.dqt.binCenter

	var sptr int
	for cnt := 0; cnt < numSubbands; cnt++ {
		if d.dqt.qBin[cnt] == 0.0 {
			continue
		}

		fptr := d.qtree[cnt].y*width + d.qtree[cnt].x
		for row := 0; row < d.qtree[cnt].leny; row++ {
			for col := 0; col < d.qtree[cnt].lenx; col++ {
				switch {
				case sip[sptr] == 0:
					fip[fptr] = 0.0
				case sip[sptr] > 0:
					fip[fptr] = d.dqt.qBin[cnt]*(float32(sip[sptr])-binCenter) + d.dqt.zBin[cnt]/2.0
				case sip[sptr] < 0:
					fip[fptr] = d.dqt.qBin[cnt]*(float32(sip[sptr])+binCenter) - d.dqt.zBin[cnt]/2.0
				}
				fptr++
				sptr++
			}
			fptr += width - d.qtree[cnt].lenx
		}
	}

	return fip, nil
}

// reconstruct applies the inverse wavelet transform in place over fdata,
// walking the wavelet tree from the deepest node back to the full frame.
// Each node gets a column pass into scratch and a row pass back.
func (d *decoder) reconstruct(fdata []float32, width, height int) error {
	if !d.dtt.loDefined {
		return d.errorf("lopass filter coefficients not defined")
	}
	if !d.dtt.hiDefined {
		return d.errorf("hipass filter coefficients not defined")
	}

	scratch := make([]float32, width*height)

	for node := wTreeLen - 1; node >= 0; node-- {
		base := d.wtree[node].y*width + d.wtree[node].x
		joinLets(scratch, fdata, 0, base,
			d.wtree[node].lenx, d.wtree[node].leny,
			1, width,
			d.dtt.hi, d.dtt.hisz,
			d.dtt.lo, d.dtt.losz,
			d.wtree[node].invcl)
		joinLets(fdata, scratch, base, 0,
			d.wtree[node].leny, d.wtree[node].lenx,
			width, 1,
			d.dtt.hi, d.dtt.hisz,
			d.dtt.lo, d.dtt.losz,
			d.wtree[node].invrw)
	}

	return nil
}

// joinLets is one synthesis pass: an upsample-and-convolve of the lo-pass
// and hi-pass halves of each scanline, interleaving the reconstructed
// even/odd samples through two write cursors. Read pointers reflect at the
// subband edges (lp0/lp1, hp0/hp1), once per side; for even-length filters
// the hi-pass reflection flips sign (sfac) and the filter itself is negated
// on entry and restored on exit, so the table is stable between nodes.
//
// len1 counts the scanlines, len2 the samples along the filtered axis.
// pitch advances to the next scanline, stride to the next sample. inv says
// the hi-pass subband precedes the lo-pass one along this axis.
func joinLets(newdata, olddata []float32, newIndex, oldIndex, len1, len2, pitch, stride int,
	hi []float32, hsz int, lo []float32, lsz, inv int) {

	var lle, lre, hle, hre int
	var lpx, lpxstr, hpx, hpxstr int
	var fhre int
	var sfac float32

	daEv := len2 % 2
	fiEv := lsz % 2
	pstr := stride
	nstr := -pstr

	var llen, hlen int
	if daEv != 0 {
		llen = (len2 + 1) / 2
		hlen = llen - 1
	} else {
		llen = len2 / 2
		hlen = llen
	}

	var asym, ofhre int
	var ssfac float32
	var loc, hoc, lotap, hotap int
	var olle, olre, ohle, ohre int
	if fiEv != 0 {
		asym = 0
		ssfac = 1.0
		ofhre = 0
		loc = (lsz - 1) / 4
		hoc = (hsz+1)/4 - 1
		lotap = ((lsz - 1) / 2) % 2
		hotap = ((hsz + 1) / 2) % 2
		if daEv != 0 {
			olle, olre, ohle, ohre = 0, 0, 1, 1
		} else {
			olle, olre, ohle, ohre = 0, 1, 1, 0
		}
	} else {
		asym = 1
		ssfac = -1.0
		ofhre = 2
		loc = lsz/4 - 1
		hoc = hsz/4 - 1
		lotap = (lsz / 2) % 2
		hotap = (hsz / 2) % 2
		if daEv != 0 {
			olle, olre, ohle, ohre = 1, 0, 1, 1
		} else {
			olle, olre, ohle, ohre = 1, 1, 1, 1
		}

		if loc == -1 {
			loc = 0
			olle = 0
		}
		if hoc == -1 {
			hoc = 0
			ohle = 0
		}

		for i := 0; i < hsz; i++ {
			hi[i] *= -1.0
		}
	}

	for clRw := 0; clRw < len1; clRw++ {
		limg := newIndex + clRw*pitch
		himg := limg
		newdata[himg] = 0.0
		newdata[himg+stride] = 0.0

		var lopass, hipass int
		if inv != 0 {
			hipass = oldIndex + clRw*pitch
			lopass = hipass + stride*hlen
		} else {
			lopass = oldIndex + clRw*pitch
			hipass = lopass + stride*llen
		}

		lp0 := lopass
		lp1 := lp0 + (llen-1)*stride
		lspx := lp0 + loc*stride
		lspxstr := nstr
		lstap := lotap
		lle2 := olle
		lre2 := olre

		hp0 := hipass
		hp1 := hp0 + (hlen-1)*stride
		hspx := hp0 + hoc*stride
		hspxstr := nstr
		hstap := hotap
		hle2 := ohle
		hre2 := ohre
		osfac := ssfac

		for pix := 0; pix < hlen; pix++ {
			for tap := lstap; tap >= 0; tap-- {
				lle = lle2
				lre = lre2
				lpx = lspx
				lpxstr = lspxstr

				newdata[limg] = olddata[lpx] * lo[tap]
				for i := tap + 2; i < lsz; i += 2 {
					if lpx == lp0 {
						if lle != 0 {
							lpxstr = 0
							lle = 0
						} else {
							lpxstr = pstr
						}
					}
					if lpx == lp1 {
						if lre != 0 {
							lpxstr = 0
							lre = 0
						} else {
							lpxstr = nstr
						}
					}
					lpx += lpxstr
					newdata[limg] += olddata[lpx] * lo[i]
				}
				limg += stride
			}
			if lspx == lp0 {
				if lle2 != 0 {
					lspxstr = 0
					lle2 = 0
				} else {
					lspxstr = pstr
				}
			}
			lspx += lspxstr
			lstap = 1

			for tap := hstap; tap >= 0; tap-- {
				hle = hle2
				hre = hre2
				hpx = hspx
				hpxstr = hspxstr
				fhre = ofhre
				sfac = osfac

				for i := tap; i < hsz; i += 2 {
					if hpx == hp0 {
						if hle != 0 {
							hpxstr = 0
							hle = 0
						} else {
							hpxstr = pstr
							sfac = 1.0
						}
					}
					if hpx == hp1 {
						if hre != 0 {
							hpxstr = 0
							hre = 0
							if asym != 0 && daEv != 0 {
								hre = 1
								fhre--
								sfac = float32(fhre)
								if sfac == 0.0 {
									hre = 0
								}
							}
						} else {
							hpxstr = nstr
							if asym != 0 {
								sfac = -1.0
							}
						}
					}
					newdata[himg] += olddata[hpx] * hi[i] * sfac
					hpx += hpxstr
				}
				himg += stride
			}
			if hspx == hp0 {
				if hle2 != 0 {
					hspxstr = 0
					hle2 = 0
				} else {
					hspxstr = pstr
					osfac = 1.0
				}
			}
			hspx += hspxstr
			hstap = 1
		}

		// Tail taps past the last full output pair.
		if daEv != 0 {
			if lotap != 0 {
				lstap = 1
			} else {
				lstap = 0
			}
		} else if lotap != 0 {
			lstap = 2
		} else {
			lstap = 1
		}

		for tap := 1; tap >= lstap; tap-- {
			lle = lle2
			lre = lre2
			lpx = lspx
			lpxstr = lspxstr

			newdata[limg] = olddata[lpx] * lo[tap]
			for i := tap + 2; i < lsz; i += 2 {
				if lpx == lp0 {
					if lle != 0 {
						lpxstr = 0
						lle = 0
					} else {
						lpxstr = pstr
					}
				}
				if lpx == lp1 {
					if lre != 0 {
						lpxstr = 0
						lre = 0
					} else {
						lpxstr = nstr
					}
				}
				lpx += lpxstr
				newdata[limg] += olddata[lpx] * lo[i]
			}
			limg += stride
		}

		if daEv != 0 {
			if hotap != 0 {
				hstap = 1
			} else {
				hstap = 0
			}
			if hsz == 2 {
				hspx -= hspxstr
				fhre = 1
			}
		} else if hotap != 0 {
			hstap = 2
		} else {
			hstap = 1
		}

		for tap := 1; tap >= hstap; tap-- {
			hle = hle2
			hre = hre2
			hpx = hspx
			hpxstr = hspxstr
			sfac = osfac
			if hsz != 2 {
				fhre = ofhre
			}

			for i := tap; i < hsz; i += 2 {
				if hpx == hp0 {
					if hle != 0 {
						hpxstr = 0
						hle = 0
					} else {
						hpxstr = pstr
						sfac = 1.0
					}
				}
				if hpx == hp1 {
					if hre != 0 {
						hpxstr = 0
						hre = 0
						if asym != 0 && daEv != 0 {
							hre = 1
							fhre--
							sfac = float32(fhre)
							if sfac == 0.0 {
								hre = 0
							}
						}
					} else {
						hpxstr = nstr
						if asym != 0 {
							sfac = -1.0
						}
					}
				}
				newdata[himg] += olddata[hpx] * hi[i] * sfac
				hpx += hpxstr
			}
			himg += stride
		}
	}

	if fiEv == 0 {
		for i := 0; i < hsz; i++ {
			hi[i] *= -1.0
		}
	}
}
