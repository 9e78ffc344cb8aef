package template

// Built-in legal document templates. Placeholder prose only; the firm fills in
// the particulars after generation.

const (
	headingFont = "Helvetica-Bold"
	bodyFont    = "Helvetica"
)

func heading(text string) Placement {
	return Placement{X: 297.5, Y: 780, Text: text, Style: Style{Font: headingFont, Size: 16}}
}

func line(y float64, text string) Placement {
	return Placement{X: 72, Y: y, Text: text, Style: Style{Font: bodyFont, Size: 12}}
}

func builtins() []Template {
	return []Template{
		{
			ID:          "affidavit",
			Name:        "Affidavit",
			Description: "Sworn written statement for use as evidence",
			Pages: [][]Placement{{
				heading("AFFIDAVIT"),
				line(720, "REPUBLIC OF KENYA"),
				line(700, "IN THE MATTER OF ________________________"),
				line(660, "I, ________________________, of P.O. Box ________, being an adult of"),
				line(640, "sound mind, do hereby make oath and state as follows:"),
				line(600, "1. THAT I am the deponent herein and therefore competent to swear"),
				line(580, "   this affidavit."),
				line(540, "2. THAT the facts deponed to herein are true to the best of my"),
				line(520, "   knowledge, information and belief."),
				line(460, "SWORN at ________________ this ______ day of ____________, 20____."),
				line(400, "_________________________"),
				line(380, "DEPONENT"),
				line(320, "BEFORE ME: _________________________"),
				line(300, "COMMISSIONER FOR OATHS"),
			}},
		},
		{
			ID:          "summons",
			Name:        "Summons",
			Description: "Summons to enter appearance before the court",
			Pages: [][]Placement{{
				heading("SUMMONS TO ENTER APPEARANCE"),
				line(720, "IN THE ________________ COURT AT ________________"),
				line(700, "CIVIL SUIT NO. ________ OF 20____"),
				line(660, "________________________ ............................ PLAINTIFF"),
				line(640, "VERSUS"),
				line(620, "________________________ ............................ DEFENDANT"),
				line(580, "TO: ________________________"),
				line(540, "You are hereby required to enter an appearance in the above suit"),
				line(520, "within fifteen (15) days of service of this summons upon you."),
				line(480, "Should you fail to do so, judgment may be entered against you in"),
				line(460, "your absence."),
				line(400, "ISSUED at ________________ this ______ day of ____________, 20____."),
				line(340, "_________________________"),
				line(320, "DEPUTY REGISTRAR"),
			}},
		},
		{
			ID:          "contract",
			Name:        "Contract",
			Description: "General agreement between two parties",
			Pages: [][]Placement{{
				heading("AGREEMENT"),
				line(720, "THIS AGREEMENT is made this ______ day of ____________, 20____"),
				line(700, "BETWEEN ________________________ (the \"First Party\")"),
				line(680, "AND ________________________ (the \"Second Party\")."),
				line(640, "WHEREAS the parties wish to record the terms of their agreement,"),
				line(620, "IT IS HEREBY AGREED as follows:"),
				line(580, "1. ________________________________________________________________"),
				line(540, "2. ________________________________________________________________"),
				line(500, "3. ________________________________________________________________"),
				line(440, "IN WITNESS WHEREOF the parties have executed this agreement on the"),
				line(420, "date first above written."),
				line(360, "SIGNED: _____________________     SIGNED: _____________________"),
				line(340, "        First Party                       Second Party"),
			}},
		},
		{
			ID:          "witness-statement",
			Name:        "Witness Statement",
			Description: "Statement of a witness for court proceedings",
			Pages: [][]Placement{{
				heading("WITNESS STATEMENT"),
				line(720, "IN THE ________________ COURT AT ________________"),
				line(700, "CASE NO. ________ OF 20____"),
				line(660, "STATEMENT OF ________________________"),
				line(620, "I, the undersigned, state as follows:"),
				line(580, "1. I am ________________________ and I reside at ________________."),
				line(540, "2. On the ______ day of ____________, 20____, I witnessed the"),
				line(520, "   following: ______________________________________________________"),
				line(480, "3. I make this statement believing its contents to be true."),
				line(420, "Dated this ______ day of ____________, 20____."),
				line(360, "_________________________"),
				line(340, "WITNESS"),
			}},
		},
		{
			ID:          "power-of-attorney",
			Name:        "Power of Attorney",
			Description: "Appointment of an attorney to act on the donor's behalf",
			Pages: [][]Placement{{
				heading("POWER OF ATTORNEY"),
				line(720, "KNOW ALL PERSONS BY THESE PRESENTS that I, ________________________"),
				line(700, "of P.O. Box ________ (the \"Donor\"), hereby appoint"),
				line(680, "________________________ of P.O. Box ________ (the \"Attorney\")"),
				line(640, "to be my true and lawful attorney, to act in my name and on my"),
				line(620, "behalf in the following matters:"),
				line(580, "1. ________________________________________________________________"),
				line(540, "2. ________________________________________________________________"),
				line(480, "and I undertake to ratify all that the Attorney lawfully does by"),
				line(460, "virtue of this power."),
				line(400, "EXECUTED this ______ day of ____________, 20____."),
				line(340, "_________________________"),
				line(320, "DONOR"),
			}},
		},
	}
}
